// internals/helpers/authz/authz.go
package authz

import (
	"github.com/gofiber/fiber/v2"

	"sakanku_backend/internals/constants"
)

// Actor is the authenticated admin performing a request. It is resolved once
// from the request context at the policy boundary; role strings are never
// re-compared further down the call chain.
type Actor struct {
	AdminID uint
	Role    string
}

func (a Actor) IsSuperAdmin() bool {
	return a.Role == constants.RoleSuperAdmin
}

// Decision is the outcome of an ownership check.
type Decision struct {
	Allowed bool
	Reason  string
}

// Err converts a denied decision into a 403. Allowed decisions return nil.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, d.Reason)
}

// AuthorizeMutation gates every write on a listing, part, or contract:
// a super admin may mutate anything, any other admin only resources whose
// owning listing they created themselves.
func AuthorizeMutation(actor Actor, ownerAdminID uint) Decision {
	if actor.IsSuperAdmin() {
		return Decision{Allowed: true}
	}
	if actor.AdminID == ownerAdminID {
		return Decision{Allowed: true}
	}
	return Decision{
		Allowed: false,
		Reason:  "Only the admin who created this listing can modify it",
	}
}

// ActorFromLocals reads the admin identity stored by the auth middleware.
func ActorFromLocals(c *fiber.Ctx) (Actor, error) {
	id, ok := c.Locals("admin_id").(uint)
	if !ok || id == 0 {
		return Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing admin identity")
	}
	role, ok := c.Locals("admin_role").(string)
	if !ok || role == "" {
		return Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing role information")
	}
	return Actor{AdminID: id, Role: role}, nil
}
