// internals/features/notifications/notification/service/notification_service.go
package service

import (
	"errors"

	"gorm.io/gorm"

	notifModel "sakanku_backend/internals/features/notifications/notification/model"
)

// CreateDeduplicated inserts a notification unless an unresolved one already
// exists for the same (contract, status) pair; in that case the existing row
// is returned untouched. Resolved rows never block a new one, so the same
// pair can reappear after the earlier notification was handled.
func CreateDeduplicated(db *gorm.DB, contractID uint, status notifModel.NotificationStatus, notifyAdminID uint, description string) (*notifModel.NotificationModel, error) {
	var existing notifModel.NotificationModel
	err := db.Where("rental_contract_id = ? AND status = ? AND is_resolved = ?",
		contractID, status, false).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	n := &notifModel.NotificationModel{
		RentalContractID: contractID,
		Status:           status,
		NotifyAdminID:    notifyAdminID,
		Description:      description,
	}
	if err := db.Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}
