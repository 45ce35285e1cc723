package model

import (
	"time"

	"github.com/go-playground/validator/v10"

	"sakanku_backend/internals/constants"
)

// Validator instance
var validate = validator.New()

type AdminRole string

const (
	RoleSuperAdmin AdminRole = constants.RoleSuperAdmin
	RoleAdmin      AdminRole = constants.RoleAdmin
)

func (r AdminRole) Valid() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// AdminModel represents the admins table
type AdminModel struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	FullName string    `gorm:"size:100;not null" json:"full_name" validate:"required,min=3,max=100"`
	Email    string    `gorm:"size:100;unique;not null" json:"email" validate:"required,email"`
	Phone    string    `gorm:"size:20;unique;not null" json:"phone" validate:"required,min=7,max=20"`
	Role     AdminRole `gorm:"type:varchar(20);not null" json:"role" validate:"required,oneof=super_admin admin"`
	Password string    `gorm:"size:255;not null" json:"-" validate:"required,min=8"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}

// SetDefaultValues fills defaults before validation
func (a *AdminModel) SetDefaultValues() {
	if a.Role == "" {
		a.Role = RoleAdmin
	}
}

// Validate checks the struct against the rules above
func (a *AdminModel) Validate() error {
	a.SetDefaultValues()
	return validate.Struct(a)
}
