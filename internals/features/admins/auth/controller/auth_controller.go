// internals/features/admins/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sakanku_backend/internals/configs"
	adminDTO "sakanku_backend/internals/features/admins/admin/dto"
	adminModel "sakanku_backend/internals/features/admins/admin/model"
	authDTO "sakanku_backend/internals/features/admins/auth/dto"
	authService "sakanku_backend/internals/features/admins/auth/service"
	helper "sakanku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /api/v1/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidatorError(c, err)
	}

	admin, err := h.findByEmailOrPhone(strings.TrimSpace(req.Username))
	if err != nil {
		// Do not leak whether the account exists
		return helper.JsonError(c, fiber.StatusUnauthorized, "Incorrect email/phone or password")
	}
	if err := authService.CheckPasswordHash(admin.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Incorrect email/phone or password")
	}

	token, err := authService.CreateAccessToken(admin)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Login successful", authDTO.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// POST /api/v1/auth/register (super admin only, gated by route middleware)
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req adminDTO.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidatorError(c, err)
	}

	if err := h.ensureEmailAndPhoneFree(req.Email, req.Phone, 0); err != nil {
		return helper.FromFiberError(c, err)
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	m := req.ToModel(hashed)
	if err := h.DB.Create(m).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Admin not found"))
	}

	return helper.JsonCreated(c, "Admin registered", adminDTO.NewAdminResponse(m))
}

// POST /api/v1/auth/create-master-admin
// One-time bootstrap: requires the master setup password and refuses to run
// once any super admin exists.
func (h *AuthController) CreateMasterAdmin(c *fiber.Ctx) error {
	var req authDTO.MasterAdminSetupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidatorError(c, err)
	}

	master := configs.MasterSetupPassword
	if master == "" || req.MasterPassword != master {
		return helper.JsonError(c, fiber.StatusForbidden, "Invalid master password")
	}

	var count int64
	if err := h.DB.Model(&adminModel.AdminModel{}).
		Where("role = ?", adminModel.RoleSuperAdmin).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Master admin already exists. Use regular admin creation instead.")
	}

	if err := h.ensureEmailAndPhoneFree(req.Email, req.Phone, 0); err != nil {
		return helper.FromFiberError(c, err)
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	m := &adminModel.AdminModel{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     adminModel.RoleSuperAdmin,
		Password: hashed,
	}
	if err := h.DB.Create(m).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Admin not found"))
	}

	log.Printf("[SETUP] Master admin created: %s", m.Email)
	return helper.JsonCreated(c, "Master admin created", adminDTO.NewAdminResponse(m))
}

/* ===================== INTERNAL ===================== */

func (h *AuthController) findByEmailOrPhone(username string) (*adminModel.AdminModel, error) {
	var admin adminModel.AdminModel
	err := h.DB.Where("email = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = h.DB.Where("phone = ?", username).First(&admin).Error
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (h *AuthController) ensureEmailAndPhoneFree(email, phone string, excludeID uint) error {
	var count int64
	if err := h.DB.Model(&adminModel.AdminModel{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Email already registered")
	}
	if err := h.DB.Model(&adminModel.AdminModel{}).
		Where("phone = ? AND id <> ?", phone, excludeID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Phone number already registered")
	}
	return nil
}
