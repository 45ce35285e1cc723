// internals/features/rentals/contract/controller/rental_contract_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contractDTO "sakanku_backend/internals/features/rentals/contract/dto"
	contractModel "sakanku_backend/internals/features/rentals/contract/model"
	contractService "sakanku_backend/internals/features/rentals/contract/service"
	helper "sakanku_backend/internals/helpers"
	"sakanku_backend/internals/helpers/authz"
)

var validate = validator.New()

type RentalContractController struct {
	DB *gorm.DB
}

func NewRentalContractController(db *gorm.DB) *RentalContractController {
	return &RentalContractController{DB: db}
}

/* ===================== HANDLERS ===================== */

// GET /api/v1/rental-contracts
func (h *RentalContractController) List(c *fiber.Ctx) error {
	if _, err := authz.ActorFromLocals(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 100, 200)

	q := h.DB.Model(&contractModel.RentalContractModel{})
	if apartmentID := c.QueryInt("apartment_id"); apartmentID > 0 {
		q = q.Joins("JOIN apartment_parts ap ON ap.id = rental_contracts.apartment_part_id").
			Where("ap.apartment_id = ?", apartmentID)
	}
	if isActive := strings.TrimSpace(c.Query("is_active")); isActive != "" {
		q = q.Where("rental_contracts.is_active = ?", isActive == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	var contracts []contractModel.RentalContractModel
	if err := q.Order("rental_contracts.id DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&contracts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	return helper.JsonList(c, "ok", contractDTO.NewRentalContractResponses(contracts),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/v1/rental-contracts/:id
func (h *RentalContractController) GetByID(c *fiber.Ctx) error {
	if _, err := authz.ActorFromLocals(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid contract id")
	}

	var contract contractModel.RentalContractModel
	if err := h.DB.First(&contract, id).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Rental contract not found"))
	}
	return helper.JsonOK(c, "ok", contractDTO.NewRentalContractResponse(&contract))
}

// POST /api/v1/rental-contracts
// Ownership is resolved through the studio's parent listing; the part flips
// to rented in the same transaction as the insert.
func (h *RentalContractController) Create(c *fiber.Ctx) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req contractDTO.CreateRentalContractRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidatorError(c, err)
	}

	ownerID, err := authz.PartOwner(h.DB, req.ApartmentPartID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := authz.AuthorizeMutation(actor, ownerID).Err(); err != nil {
		return helper.FromFiberError(c, err)
	}

	m := req.ToModel(actor.AdminID)
	if err := contractService.CreateContract(h.DB, m); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Rental contract created", contractDTO.NewRentalContractResponse(m))
}

// PUT /api/v1/rental-contracts/:id
func (h *RentalContractController) Update(c *fiber.Ctx) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid contract id")
	}

	ownerID, err := authz.ContractOwner(h.DB, uint(id))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := authz.AuthorizeMutation(actor, ownerID).Err(); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req contractDTO.UpdateRentalContractRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var contract contractModel.RentalContractModel
	if err := h.DB.First(&contract, id).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Rental contract not found"))
	}

	wasActive := contract.IsActive
	req.ApplyToModel(&contract)
	if err := contractService.UpdateContract(h.DB, &contract, wasActive); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Rental contract updated", contractDTO.NewRentalContractResponse(&contract))
}

// DELETE /api/v1/rental-contracts/:id
// Gated on the super admin role at the route level, not on listing ownership.
func (h *RentalContractController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid contract id")
	}

	if err := contractService.DeleteContract(h.DB, uint(id)); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Rental contract deleted", fiber.Map{"id": id})
}
