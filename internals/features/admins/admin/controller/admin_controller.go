// internals/features/admins/admin/controller/admin_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminDTO "sakanku_backend/internals/features/admins/admin/dto"
	adminModel "sakanku_backend/internals/features/admins/admin/model"
	authService "sakanku_backend/internals/features/admins/auth/service"
	helper "sakanku_backend/internals/helpers"
	"sakanku_backend/internals/helpers/authz"
)

var validate = validator.New()

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

/* ===================== SELF ===================== */

// GET /api/v1/admins/me
func (h *AdminController) GetMe(c *fiber.Ctx) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var admin adminModel.AdminModel
	if err := h.DB.First(&admin, actor.AdminID).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Admin not found"))
	}
	return helper.JsonOK(c, "ok", adminDTO.NewAdminResponse(&admin))
}

// PUT /api/v1/admins/me
// Regular admins can update their own profile but never their role.
func (h *AdminController) UpdateMe(c *fiber.Ctx) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req adminDTO.UpdateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidatorError(c, err)
	}
	if !actor.IsSuperAdmin() {
		req.Role = nil
	}

	updated, err := h.applyUpdate(actor.AdminID, &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Profile updated", adminDTO.NewAdminResponse(updated))
}

/* ===================== MANAGEMENT (super admin only) ===================== */

// GET /api/v1/admins
func (h *AdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := h.DB.Model(&adminModel.AdminModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	var admins []adminModel.AdminModel
	if err := h.DB.Order("id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&admins).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	return helper.JsonList(c, "ok", adminDTO.NewAdminResponses(admins),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/v1/admins/:id
func (h *AdminController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admin id")
	}

	var admin adminModel.AdminModel
	if err := h.DB.First(&admin, id).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Admin not found"))
	}
	return helper.JsonOK(c, "ok", adminDTO.NewAdminResponse(&admin))
}

// PUT /api/v1/admins/:id
func (h *AdminController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admin id")
	}

	var req adminDTO.UpdateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidatorError(c, err)
	}

	updated, err := h.applyUpdate(uint(id), &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Admin updated", adminDTO.NewAdminResponse(updated))
}

// DELETE /api/v1/admins/:id
func (h *AdminController) Delete(c *fiber.Ctx) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admin id")
	}
	if uint(id) == actor.AdminID {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot delete your own account")
	}

	var admin adminModel.AdminModel
	if err := h.DB.First(&admin, id).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Admin not found"))
	}
	if err := h.DB.Delete(&admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete admin")
	}
	return helper.JsonDeleted(c, "Admin deleted", fiber.Map{"id": admin.ID})
}

/* ===================== INTERNAL ===================== */

func (h *AdminController) applyUpdate(id uint, req *adminDTO.UpdateAdminRequest) (*adminModel.AdminModel, error) {
	var admin adminModel.AdminModel
	if err := h.DB.First(&admin, id).Error; err != nil {
		return nil, helper.ErrFromDB(err, "Admin not found")
	}

	if req.Email != nil && *req.Email != admin.Email {
		var count int64
		if err := h.DB.Model(&adminModel.AdminModel{}).
			Where("email = ? AND id <> ?", *req.Email, id).
			Count(&count).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Database error")
		}
		if count > 0 {
			return nil, fiber.NewError(fiber.StatusConflict, "Email already registered")
		}
	}
	if req.Phone != nil && *req.Phone != admin.Phone {
		var count int64
		if err := h.DB.Model(&adminModel.AdminModel{}).
			Where("phone = ? AND id <> ?", *req.Phone, id).
			Count(&count).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Database error")
		}
		if count > 0 {
			return nil, fiber.NewError(fiber.StatusConflict, "Phone number already registered")
		}
	}

	if req.Password != nil {
		hashed, err := authService.HashPassword(*req.Password)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
		}
		req.Password = &hashed
	}

	req.ApplyToModel(&admin)
	if err := h.DB.Save(&admin).Error; err != nil {
		return nil, helper.ErrFromDB(err, "Admin not found")
	}
	return &admin, nil
}
