// internals/features/listings/apartment_sale/route/apartment_sale_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	saleController "sakanku_backend/internals/features/listings/apartment_sale/controller"
	authMiddleware "sakanku_backend/internals/middlewares/auth"
)

// ApartmentSaleRoutes mounts /apartments/sale. Browsing is public;
// mutations require an authenticated admin.
func ApartmentSaleRoutes(api fiber.Router, db *gorm.DB) {
	ctl := saleController.NewApartmentSaleController(db)
	requireAuth := authMiddleware.AuthMiddleware(db)

	sale := api.Group("/apartments/sale")
	sale.Get("/", ctl.List)
	sale.Get("/:id", ctl.GetByID)

	sale.Post("/", requireAuth, ctl.Create)
	sale.Put("/:id", requireAuth, ctl.Update)
	sale.Delete("/:id", requireAuth, ctl.Delete)
}
