package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakanku_backend/internals/configs"
	aModel "sakanku_backend/internals/features/admins/admin/model"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hashed)

	assert.NoError(t, CheckPasswordHash(hashed, "s3cret-password"))
	assert.Error(t, CheckPasswordHash(hashed, "wrong-password"))
}

func TestCreateAccessToken(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = prev })

	admin := &aModel.AdminModel{ID: 42, Role: aModel.RoleSuperAdmin}
	signed, err := CreateAccessToken(admin)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		require.IsType(t, &jwt.SigningMethodHMAC{}, tok.Method)
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "42", claims["sub"])
	assert.Equal(t, "super_admin", claims["role"])
	assert.NotEmpty(t, claims["exp"])
}

func TestCreateAccessTokenRequiresSecret(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = ""
	t.Cleanup(func() { configs.JWTSecret = prev })

	_, err := CreateAccessToken(&aModel.AdminModel{ID: 1, Role: aModel.RoleAdmin})
	assert.Error(t, err)
}
