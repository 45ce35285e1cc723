// internals/features/admins/admin/dto/admin_dto.go
package dto

import (
	"time"

	aModel "sakanku_backend/internals/features/admins/admin/model"
)

/* ===================== REQUESTS ===================== */

type CreateAdminRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=7,max=20"`
	Role     string `json:"role" validate:"required,oneof=super_admin admin"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *CreateAdminRequest) ToModel(hashedPassword string) *aModel.AdminModel {
	return &aModel.AdminModel{
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Role:     aModel.AdminRole(r.Role),
		Password: hashedPassword,
	}
}

type UpdateAdminRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=3,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,min=7,max=20"`
	Role     *string `json:"role" validate:"omitempty,oneof=super_admin admin"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

// ApplyToModel copies only the provided fields. The password, when present,
// must already be hashed by the caller.
func (r *UpdateAdminRequest) ApplyToModel(m *aModel.AdminModel) {
	if r.FullName != nil {
		m.FullName = *r.FullName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Phone != nil {
		m.Phone = *r.Phone
	}
	if r.Role != nil {
		m.Role = aModel.AdminRole(*r.Role)
	}
	if r.Password != nil {
		m.Password = *r.Password
	}
}

/* ===================== RESPONSES ===================== */

type AdminResponse struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAdminResponse(m *aModel.AdminModel) *AdminResponse {
	if m == nil {
		return nil
	}
	return &AdminResponse{
		ID:        m.ID,
		FullName:  m.FullName,
		Email:     m.Email,
		Phone:     m.Phone,
		Role:      string(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewAdminResponses(ms []aModel.AdminModel) []AdminResponse {
	out := make([]AdminResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewAdminResponse(&ms[i]))
	}
	return out
}
