// internals/features/rentals/contract/route/rental_contract_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sakanku_backend/internals/constants"
	contractController "sakanku_backend/internals/features/rentals/contract/controller"
	authMiddleware "sakanku_backend/internals/middlewares/auth"
)

func RentalContractRoutes(api fiber.Router, db *gorm.DB) {
	ctl := contractController.NewRentalContractController(db)

	contracts := api.Group("/rental-contracts", authMiddleware.AuthMiddleware(db))
	contracts.Get("/", ctl.List)
	contracts.Get("/:id", ctl.GetByID)
	contracts.Post("/", ctl.Create)
	contracts.Put("/:id", ctl.Update)

	// Deletion is the one write not gated on listing ownership
	contracts.Delete("/:id",
		authMiddleware.OnlyRoles(
			constants.RoleErrorSuperAdmin("rental contract deletion"),
			constants.RoleSuperAdmin,
		),
		ctl.Delete,
	)
}
