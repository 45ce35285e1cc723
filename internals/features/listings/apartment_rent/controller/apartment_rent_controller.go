// internals/features/listings/apartment_rent/controller/apartment_rent_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sakanku_backend/internals/constants"
	adminModel "sakanku_backend/internals/features/admins/admin/model"
	partDTO "sakanku_backend/internals/features/listings/apartment_part/dto"
	partModel "sakanku_backend/internals/features/listings/apartment_part/model"
	rentDTO "sakanku_backend/internals/features/listings/apartment_rent/dto"
	rentModel "sakanku_backend/internals/features/listings/apartment_rent/model"
	saleDTO "sakanku_backend/internals/features/listings/apartment_sale/dto"
	saleModel "sakanku_backend/internals/features/listings/apartment_sale/model"
	helper "sakanku_backend/internals/helpers"
	"sakanku_backend/internals/helpers/authz"
)

var validate = validator.New()

type ApartmentRentController struct {
	DB *gorm.DB
}

func NewApartmentRentController(db *gorm.DB) *ApartmentRentController {
	return &ApartmentRentController{DB: db}
}

// GET /api/v1/apartments/rent
func (h *ApartmentRentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&rentModel.ApartmentRentModel{})
	if loc := strings.TrimSpace(c.Query("location")); loc != "" {
		q = q.Where("location = ?", loc)
	}
	if minPrice := c.QueryFloat("min_price"); minPrice > 0 {
		q = q.Where("price >= ?", minPrice)
	}
	if maxPrice := c.QueryFloat("max_price"); maxPrice > 0 {
		q = q.Where("price <= ?", maxPrice)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	var rents []rentModel.ApartmentRentModel
	if err := q.Order("id DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&rents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	return helper.JsonList(c, "ok", rentDTO.NewApartmentRentResponses(rents),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/v1/apartments/rent/:id  (detail with its studio parts)
func (h *ApartmentRentController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid apartment id")
	}

	var rent rentModel.ApartmentRentModel
	if err := h.DB.First(&rent, id).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Apartment not found"))
	}

	var parts []partModel.ApartmentPartModel
	if err := h.DB.Where("apartment_id = ?", rent.ID).Order("id ASC").Find(&parts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	resp := rentDTO.NewApartmentRentResponse(&rent)
	resp.Parts = partDTO.NewApartmentPartResponses(parts)
	return helper.JsonOK(c, "ok", resp)
}

// POST /api/v1/apartments/rent
func (h *ApartmentRentController) Create(c *fiber.Ctx) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req rentDTO.CreateApartmentRentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidatorError(c, err)
	}

	m := req.ToModel(actor.AdminID)
	if err := h.DB.Create(m).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Apartment not found"))
	}
	return helper.JsonCreated(c, "Apartment listed for rent", rentDTO.NewApartmentRentResponse(m))
}

// PUT /api/v1/apartments/rent/:id
func (h *ApartmentRentController) Update(c *fiber.Ctx) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid apartment id")
	}

	ownerID, err := authz.RentOwner(h.DB, uint(id))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := authz.AuthorizeMutation(actor, ownerID).Err(); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req rentDTO.UpdateApartmentRentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var rent rentModel.ApartmentRentModel
	if err := h.DB.First(&rent, id).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Apartment not found"))
	}
	req.ApplyToModel(&rent)
	if err := h.DB.Save(&rent).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Apartment not found"))
	}
	return helper.JsonUpdated(c, "Apartment updated", rentDTO.NewApartmentRentResponse(&rent))
}

// DELETE /api/v1/apartments/rent/:id
// Deleting the parent removes its parts in the same transaction.
func (h *ApartmentRentController) Delete(c *fiber.Ctx) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid apartment id")
	}

	ownerID, err := authz.RentOwner(h.DB, uint(id))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := authz.AuthorizeMutation(actor, ownerID).Err(); err != nil {
		return helper.FromFiberError(c, err)
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("apartment_id = ?", id).Delete(&partModel.ApartmentPartModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&rentModel.ApartmentRentModel{}, id).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete apartment")
	}
	return helper.JsonDeleted(c, "Apartment deleted", fiber.Map{"id": id})
}

// GET /api/v1/apartments/rent/:id/whatsapp
// Public contact resolution: guests get the phone of the first super admin.
func (h *ApartmentRentController) WhatsappContact(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid apartment id")
	}

	var rent rentModel.ApartmentRentModel
	if err := h.DB.Select("id").First(&rent, id).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Apartment not found"))
	}

	var admin adminModel.AdminModel
	if err := h.DB.Select("phone").
		Where("role = ?", constants.RoleSuperAdmin).
		Order("id ASC").First(&admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No admin contact available")
	}

	return helper.JsonOK(c, "ok", fiber.Map{"admin_phone": admin.Phone})
}

// GET /api/v1/apartments/my-content
// Rent and sale listings created by the requesting admin plus studio totals;
// a super admin sees everything.
func (h *ApartmentRentController) MyContent(c *fiber.Ctx) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 100, 200)

	rentQ := h.DB.Model(&rentModel.ApartmentRentModel{})
	saleQ := h.DB.Model(&saleModel.ApartmentSaleModel{})
	if !actor.IsSuperAdmin() {
		rentQ = rentQ.Where("listed_by_admin_id = ?", actor.AdminID)
		saleQ = saleQ.Where("listed_by_admin_id = ?", actor.AdminID)
	}

	var rents []rentModel.ApartmentRentModel
	if err := rentQ.Order("id DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&rents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	var sales []saleModel.ApartmentSaleModel
	if err := saleQ.Order("id DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&sales).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	rentResponses := rentDTO.NewApartmentRentResponses(rents)
	totalStudios := 0
	for i := range rents {
		var parts []partModel.ApartmentPartModel
		if err := h.DB.Where("apartment_id = ?", rents[i].ID).Order("id ASC").Find(&parts).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
		}
		rentResponses[i].Parts = partDTO.NewApartmentPartResponses(parts)
		totalStudios += len(parts)
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"rent_apartments":       rentResponses,
		"sale_apartments":       saleDTO.NewApartmentSaleResponses(sales),
		"total_rent_apartments": len(rentResponses),
		"total_sale_apartments": len(sales),
		"total_studios":         totalStudios,
	})
}
