// internals/features/listings/apartment_rent/route/apartment_rent_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rentController "sakanku_backend/internals/features/listings/apartment_rent/controller"
	authMiddleware "sakanku_backend/internals/middlewares/auth"
)

// ApartmentRentRoutes mounts /apartments/rent plus the cross-listing
// aggregate endpoint. Browsing and the whatsapp contact are public.
func ApartmentRentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := rentController.NewApartmentRentController(db)
	requireAuth := authMiddleware.AuthMiddleware(db)

	api.Get("/apartments/my-content", requireAuth, ctl.MyContent)

	rent := api.Group("/apartments/rent")
	rent.Get("/", ctl.List)
	rent.Get("/:id", ctl.GetByID)
	rent.Get("/:id/whatsapp", ctl.WhatsappContact)

	rent.Post("/", requireAuth, ctl.Create)
	rent.Put("/:id", requireAuth, ctl.Update)
	rent.Delete("/:id", requireAuth, ctl.Delete)
}
