// internals/features/admins/auth/service/token_service.go
package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"sakanku_backend/internals/configs"
	aModel "sakanku_backend/internals/features/admins/admin/model"
)

const accessTTLDefault = 24 * time.Hour

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func accessTTL() time.Duration {
	if v := configs.GetEnv("ACCESS_TOKEN_TTL_MINUTES"); v != "" {
		if mins, err := strconv.Atoi(v); err == nil && mins > 0 {
			return time.Duration(mins) * time.Minute
		}
	}
	return accessTTLDefault
}

// CreateAccessToken issues a signed HS256 token whose subject is the admin id.
func CreateAccessToken(admin *aModel.AdminModel) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(admin.ID), 10),
		"role": string(admin.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(accessTTL()).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}
	return signed, nil
}
