// internals/features/admins/admin/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sakanku_backend/internals/constants"
	adminController "sakanku_backend/internals/features/admins/admin/controller"
	authMiddleware "sakanku_backend/internals/middlewares/auth"
)

// AdminRoutes mounts /admins. Everything here requires a valid token;
// management endpoints additionally require the super admin role.
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := adminController.NewAdminController(db)

	admins := api.Group("/admins", authMiddleware.AuthMiddleware(db))

	// Self-service profile
	admins.Get("/me", ctl.GetMe)
	admins.Put("/me", ctl.UpdateMe)

	superOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorSuperAdmin("admin management"),
		constants.RoleSuperAdmin,
	)
	admins.Get("/", superOnly, ctl.List)
	admins.Get("/:id", superOnly, ctl.GetByID)
	admins.Put("/:id", superOnly, ctl.Update)
	admins.Delete("/:id", superOnly, ctl.Delete)
}
