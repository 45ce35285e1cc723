// internals/features/listings/apartment_sale/controller/apartment_sale_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	saleDTO "sakanku_backend/internals/features/listings/apartment_sale/dto"
	saleModel "sakanku_backend/internals/features/listings/apartment_sale/model"
	helper "sakanku_backend/internals/helpers"
	"sakanku_backend/internals/helpers/authz"
)

var validate = validator.New()

type ApartmentSaleController struct {
	DB *gorm.DB
}

func NewApartmentSaleController(db *gorm.DB) *ApartmentSaleController {
	return &ApartmentSaleController{DB: db}
}

// GET /api/v1/apartments/sale
func (h *ApartmentSaleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&saleModel.ApartmentSaleModel{})
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

	var sales []saleModel.ApartmentSaleModel
	if err := q.Order("id DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&sales).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	return helper.JsonList(c, "ok", saleDTO.NewApartmentSaleResponses(sales),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/v1/apartments/sale/:id
func (h *ApartmentSaleController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid apartment id")
	}

	var sale saleModel.ApartmentSaleModel
	if err := h.DB.First(&sale, id).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Apartment not found"))
	}
	return helper.JsonOK(c, "ok", saleDTO.NewApartmentSaleResponse(&sale))
}

// POST /api/v1/apartments/sale
func (h *ApartmentSaleController) Create(c *fiber.Ctx) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req saleDTO.CreateApartmentSaleRequest
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
	return helper.JsonCreated(c, "Apartment listed for sale", saleDTO.NewApartmentSaleResponse(m))
}

// PUT /api/v1/apartments/sale/:id
func (h *ApartmentSaleController) Update(c *fiber.Ctx) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid apartment id")
	}

	ownerID, err := authz.SaleOwner(h.DB, uint(id))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := authz.AuthorizeMutation(actor, ownerID).Err(); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req saleDTO.UpdateApartmentSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var sale saleModel.ApartmentSaleModel
	if err := h.DB.First(&sale, id).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Apartment not found"))
	}
	req.ApplyToModel(&sale)
	if err := h.DB.Save(&sale).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Apartment not found"))
	}
	return helper.JsonUpdated(c, "Apartment updated", saleDTO.NewApartmentSaleResponse(&sale))
}

// DELETE /api/v1/apartments/sale/:id
func (h *ApartmentSaleController) Delete(c *fiber.Ctx) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid apartment id")
	}

	ownerID, err := authz.SaleOwner(h.DB, uint(id))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := authz.AuthorizeMutation(actor, ownerID).Err(); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := h.DB.Delete(&saleModel.ApartmentSaleModel{}, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete apartment")
	}
	return helper.JsonDeleted(c, "Apartment deleted", fiber.Map{"id": id})
}
