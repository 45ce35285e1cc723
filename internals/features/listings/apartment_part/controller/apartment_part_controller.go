// internals/features/listings/apartment_part/controller/apartment_part_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	partDTO "sakanku_backend/internals/features/listings/apartment_part/dto"
	partModel "sakanku_backend/internals/features/listings/apartment_part/model"
	rentModel "sakanku_backend/internals/features/listings/apartment_rent/model"
	helper "sakanku_backend/internals/helpers"
	"sakanku_backend/internals/helpers/authz"
)

var validate = validator.New()

type ApartmentPartController struct {
	DB *gorm.DB
}

func NewApartmentPartController(db *gorm.DB) *ApartmentPartController {
	return &ApartmentPartController{DB: db}
}

/* ===================== FLAT PART ENDPOINTS ===================== */

// GET /api/v1/apartments/parts
func (h *ApartmentPartController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&partModel.ApartmentPartModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("status = ?", status)
	}
	if apartmentID := c.QueryInt("apartment_id"); apartmentID > 0 {
		q = q.Where("apartment_id = ?", apartmentID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	var parts []partModel.ApartmentPartModel
	if err := q.Order("id ASC").Limit(paging.Limit).Offset(paging.Offset).Find(&parts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	return helper.JsonList(c, "ok", partDTO.NewApartmentPartResponses(parts),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/v1/apartments/parts/:id
func (h *ApartmentPartController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid part id")
	}

	var part partModel.ApartmentPartModel
	if err := h.DB.First(&part, id).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Apartment part not found"))
	}
	return helper.JsonOK(c, "ok", partDTO.NewApartmentPartResponse(&part))
}

// PUT /api/v1/apartments/parts/:id
func (h *ApartmentPartController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid part id")
	}
	return h.updatePart(c, uint(id))
}

// DELETE /api/v1/apartments/parts/:id
func (h *ApartmentPartController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid part id")
	}
	return h.deletePart(c, uint(id))
}

/* ===================== NESTED UNDER /rent/:id ===================== */

// GET /api/v1/apartments/rent/:id/parts
func (h *ApartmentPartController) ListByRent(c *fiber.Ctx) error {
	rentID, err := c.ParamsInt("id")
	if err != nil || rentID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid apartment id")
	}

	var rent rentModel.ApartmentRentModel
	if err := h.DB.Select("id").First(&rent, rentID).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Apartment not found"))
	}

	var parts []partModel.ApartmentPartModel
	if err := h.DB.Where("apartment_id = ?", rentID).Order("id ASC").Find(&parts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonOK(c, "ok", partDTO.NewApartmentPartResponses(parts))
}

// POST /api/v1/apartments/rent/:id/parts
// Ownership is checked against the parent listing; the new part snapshots the
// parent's current floor.
func (h *ApartmentPartController) CreateUnderRent(c *fiber.Ctx) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rentID, err := c.ParamsInt("id")
	if err != nil || rentID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid apartment id")
	}

	ownerID, err := authz.RentOwner(h.DB, uint(rentID))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := authz.AuthorizeMutation(actor, ownerID).Err(); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req partDTO.CreateApartmentPartRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var parent rentModel.ApartmentRentModel
	if err := h.DB.First(&parent, rentID).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Apartment not found"))
	}

	m := req.ToModel(&parent, actor.AdminID)
	if err := h.DB.Create(m).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Apartment not found"))
	}
	return helper.JsonCreated(c, "Studio created", partDTO.NewApartmentPartResponse(m))
}

// PUT /api/v1/apartments/rent/:id/parts/:partID
func (h *ApartmentPartController) UpdateUnderRent(c *fiber.Ctx) error {
	rentID, err := c.ParamsInt("id")
	if err != nil || rentID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid apartment id")
	}
	partID, err := c.ParamsInt("partID")
	if err != nil || partID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid part id")
	}
	if err := h.ensurePartBelongsToRent(uint(partID), uint(rentID)); err != nil {
		return helper.FromFiberError(c, err)
	}
	return h.updatePart(c, uint(partID))
}

// DELETE /api/v1/apartments/rent/:id/parts/:partID
func (h *ApartmentPartController) DeleteUnderRent(c *fiber.Ctx) error {
	rentID, err := c.ParamsInt("id")
	if err != nil || rentID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid apartment id")
	}
	partID, err := c.ParamsInt("partID")
	if err != nil || partID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid part id")
	}
	if err := h.ensurePartBelongsToRent(uint(partID), uint(rentID)); err != nil {
		return helper.FromFiberError(c, err)
	}
	return h.deletePart(c, uint(partID))
}

/* ===================== INTERNAL ===================== */

func (h *ApartmentPartController) ensurePartBelongsToRent(partID, rentID uint) error {
	var count int64
	if err := h.DB.Model(&partModel.ApartmentPartModel{}).
		Where("id = ? AND apartment_id = ?", partID, rentID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Apartment part not found")
	}
	return nil
}

func (h *ApartmentPartController) updatePart(c *fiber.Ctx, partID uint) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ownerID, err := authz.PartOwner(h.DB, partID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := authz.AuthorizeMutation(actor, ownerID).Err(); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req partDTO.UpdateApartmentPartRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var part partModel.ApartmentPartModel
	if err := h.DB.First(&part, partID).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Apartment part not found"))
	}
	req.ApplyToModel(&part)
	if err := h.DB.Save(&part).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Apartment part not found"))
	}
	return helper.JsonUpdated(c, "Studio updated", partDTO.NewApartmentPartResponse(&part))
}

func (h *ApartmentPartController) deletePart(c *fiber.Ctx, partID uint) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ownerID, err := authz.PartOwner(h.DB, partID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := authz.AuthorizeMutation(actor, ownerID).Err(); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := h.DB.Delete(&partModel.ApartmentPartModel{}, partID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete studio")
	}
	return helper.JsonDeleted(c, "Studio deleted", fiber.Map{"id": partID})
}
