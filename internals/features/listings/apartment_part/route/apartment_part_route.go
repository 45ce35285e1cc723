// internals/features/listings/apartment_part/route/apartment_part_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	partController "sakanku_backend/internals/features/listings/apartment_part/controller"
	authMiddleware "sakanku_backend/internals/middlewares/auth"
)

// ApartmentPartRoutes mounts studio endpoints both flat (/apartments/parts)
// and nested under their parent listing (/apartments/rent/:id/parts).
func ApartmentPartRoutes(api fiber.Router, db *gorm.DB) {
	ctl := partController.NewApartmentPartController(db)
	requireAuth := authMiddleware.AuthMiddleware(db)

	parts := api.Group("/apartments/parts")
	parts.Get("/", ctl.List)
	parts.Get("/:id", ctl.GetByID)
	parts.Put("/:id", requireAuth, ctl.Update)
	parts.Delete("/:id", requireAuth, ctl.Delete)

	nested := api.Group("/apartments/rent/:id/parts")
	nested.Get("/", ctl.ListByRent)
	nested.Post("/", requireAuth, ctl.CreateUnderRent)
	nested.Put("/:partID", requireAuth, ctl.UpdateUnderRent)
	nested.Delete("/:partID", requireAuth, ctl.DeleteUnderRent)
}
