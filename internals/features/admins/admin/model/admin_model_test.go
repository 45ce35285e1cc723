package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetDefaultValues(t *testing.T) {
	a := AdminModel{}
	a.SetDefaultValues()
	assert.Equal(t, RoleAdmin, a.Role, "missing role defaults to the regular admin")

	a = AdminModel{Role: RoleSuperAdmin}
	a.SetDefaultValues()
	assert.Equal(t, RoleSuperAdmin, a.Role)
}

func TestValidate(t *testing.T) {
	valid := AdminModel{
		FullName: "Sara Adel",
		Email:    "sara@sakanku.local",
		Phone:    "+201000000001",
		Role:     RoleAdmin,
		Password: "long-enough-password",
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Email = "not-an-email"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Role = "owner"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Password = "short"
	assert.Error(t, bad.Validate())
}
