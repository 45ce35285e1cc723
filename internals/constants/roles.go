package constants

import "fmt"

// Admin roles
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
)

// Role error message templates
const (
	ErrOnlySuperAdminsCanAccess = "❌ Only a super admin may access %s."
	ErrOnlyAdminsCanAccess      = "❌ Only an admin may access %s."
)

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllAdminRoles = []string{
		RoleSuperAdmin,
		RoleAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)
