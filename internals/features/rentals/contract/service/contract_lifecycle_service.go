// internals/features/rentals/contract/service/contract_lifecycle_service.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	partModel "sakanku_backend/internals/features/listings/apartment_part/model"
	notifModel "sakanku_backend/internals/features/notifications/notification/model"
	contractModel "sakanku_backend/internals/features/rentals/contract/model"
)

// The contract lifecycle is the only place that moves a studio between
// "available" and "rented". Every entry point runs contract write and status
// flip in one transaction so a reader never sees a rented studio without an
// active contract, or the reverse.

// CreateContract inserts the contract and marks its studio rented. A second
// contract for the same studio trips the unique index and surfaces as 409.
func CreateContract(db *gorm.DB, m *contractModel.RentalContractModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var part partModel.ApartmentPartModel
		if err := tx.First(&part, m.ApartmentPartID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Apartment part not found")
			}
			return err
		}

		if err := tx.Create(m).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "This studio already has a rental contract")
			}
			return err
		}

		return tx.Model(&partModel.ApartmentPartModel{}).
			Where("id = ?", m.ApartmentPartID).
			Update("status", partModel.PartRented).Error
	})
}

// UpdateContract persists the edited contract and, when is_active changed,
// flips the studio status in the same transaction.
func UpdateContract(db *gorm.DB, m *contractModel.RentalContractModel, wasActive bool) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(m).Error; err != nil {
			return err
		}
		if m.IsActive == wasActive {
			return nil
		}
		status := partModel.PartAvailable
		if m.IsActive {
			status = partModel.PartRented
		}
		return tx.Model(&partModel.ApartmentPartModel{}).
			Where("id = ?", m.ApartmentPartID).
			Update("status", status).Error
	})
}

// DeleteContract removes the contract plus its notifications and resets the
// studio to available.
func DeleteContract(db *gorm.DB, contractID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var contract contractModel.RentalContractModel
		if err := tx.First(&contract, contractID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Rental contract not found")
			}
			return err
		}

		if err := tx.Where("rental_contract_id = ?", contractID).
			Delete(&notifModel.NotificationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&contract).Error; err != nil {
			return err
		}

		return tx.Model(&partModel.ApartmentPartModel{}).
			Where("id = ?", contract.ApartmentPartID).
			Update("status", partModel.PartAvailable).Error
	})
}
