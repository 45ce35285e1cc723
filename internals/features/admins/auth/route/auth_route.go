// internals/features/admins/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sakanku_backend/internals/constants"
	authController "sakanku_backend/internals/features/admins/auth/controller"
	"sakanku_backend/internals/middlewares"
	authMiddleware "sakanku_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)

	// One-time bootstrap, protected by the master setup password
	auth.Post("/create-master-admin", middlewares.RegisterRateLimiter(), ctl.CreateMasterAdmin)

	// Registering new admins stays behind auth + super admin role
	auth.Post("/register",
		middlewares.RegisterRateLimiter(),
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorSuperAdmin("admin registration"),
			constants.RoleSuperAdmin,
		),
		ctl.Register,
	)
}
