// internals/features/notifications/notification/model/notification_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"
)

/*
Notification status:
- "upcoming_end"
- "unpaid_rent"
*/
type NotificationStatus string

const (
	StatusUpcomingEnd NotificationStatus = "upcoming_end"
	StatusUnpaidRent  NotificationStatus = "unpaid_rent"
)

func (s *NotificationStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = NotificationStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = NotificationStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s NotificationStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

// NotificationModel is an advisory record addressed to one admin. While a row
// for (rental_contract_id, status) stays unresolved, creating the same pair
// again is a no-op returning the existing row.
type NotificationModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RentalContractID uint               `gorm:"not null;index;column:rental_contract_id" json:"rental_contract_id"`
	Status           NotificationStatus `gorm:"type:varchar(20);not null" json:"status"`
	NotifyAdminID    uint               `gorm:"not null;index;column:notify_admin_id" json:"notify_admin_id"`

	Description string `gorm:"type:text" json:"description"`
	IsRead      bool   `gorm:"not null;default:false;column:is_read" json:"is_read"`
	IsResolved  bool   `gorm:"not null;default:false;column:is_resolved" json:"is_resolved"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
