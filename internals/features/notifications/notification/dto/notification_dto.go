// internals/features/notifications/notification/dto/notification_dto.go
package dto

import (
	"time"

	notifModel "sakanku_backend/internals/features/notifications/notification/model"
)

/* ===================== REQUESTS ===================== */

type CreateNotificationRequest struct {
	RentalContractID uint   `json:"rental_contract_id" validate:"required,gt=0"`
	Status           string `json:"status" validate:"required,oneof=upcoming_end unpaid_rent"`
	NotifyAdminID    uint   `json:"notify_admin_id" validate:"required,gt=0"`
	Description      string `json:"description"`
}

type UpdateNotificationRequest struct {
	IsRead      *bool   `json:"is_read"`
	IsResolved  *bool   `json:"is_resolved"`
	Description *string `json:"description"`
}

func (r *UpdateNotificationRequest) ApplyToModel(m *notifModel.NotificationModel) {
	if r.IsRead != nil {
		m.IsRead = *r.IsRead
	}
	if r.IsResolved != nil {
		m.IsResolved = *r.IsResolved
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
}

/* ===================== RESPONSES ===================== */

type NotificationResponse struct {
	ID               uint      `json:"id"`
	RentalContractID uint      `json:"rental_contract_id"`
	Status           string    `json:"status"`
	NotifyAdminID    uint      `json:"notify_admin_id"`
	Description      string    `json:"description"`
	IsRead           bool      `json:"is_read"`
	IsResolved       bool      `json:"is_resolved"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewNotificationResponse(m *notifModel.NotificationModel) *NotificationResponse {
	if m == nil {
		return nil
	}
	return &NotificationResponse{
		ID:               m.ID,
		RentalContractID: m.RentalContractID,
		Status:           string(m.Status),
		NotifyAdminID:    m.NotifyAdminID,
		Description:      m.Description,
		IsRead:           m.IsRead,
		IsResolved:       m.IsResolved,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func NewNotificationResponses(ms []notifModel.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewNotificationResponse(&ms[i]))
	}
	return out
}
