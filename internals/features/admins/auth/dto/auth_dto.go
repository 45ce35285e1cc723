// internals/features/admins/auth/dto/auth_dto.go
package dto

/* ===================== REQUESTS ===================== */

// LoginRequest accepts an email or phone number in the username field.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// MasterAdminSetupRequest bootstraps the first super admin with the
// master setup password; no bearer token is required.
type MasterAdminSetupRequest struct {
	FullName       string `json:"full_name" validate:"required,min=3,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,min=7,max=20"`
	Password       string `json:"password" validate:"required,min=8"`
	MasterPassword string `json:"master_password" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
