// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "sakanku_backend/internals/features/admins/admin/route"
	authRoute "sakanku_backend/internals/features/admins/auth/route"
	partRoute "sakanku_backend/internals/features/listings/apartment_part/route"
	rentRoute "sakanku_backend/internals/features/listings/apartment_rent/route"
	saleRoute "sakanku_backend/internals/features/listings/apartment_sale/route"
	notifRoute "sakanku_backend/internals/features/notifications/notification/route"
	contractRoute "sakanku_backend/internals/features/rentals/contract/route"
	uploadRoute "sakanku_backend/internals/features/uploads/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api/v1")

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Setting up AdminRoutes...")
	adminRoute.AdminRoutes(api, db)

	log.Println("[INFO] Setting up listing routes...")
	saleRoute.ApartmentSaleRoutes(api, db)
	rentRoute.ApartmentRentRoutes(api, db)
	partRoute.ApartmentPartRoutes(api, db)

	log.Println("[INFO] Setting up RentalContractRoutes...")
	contractRoute.RentalContractRoutes(api, db)

	log.Println("[INFO] Setting up NotificationRoutes...")
	notifRoute.NotificationRoutes(api, db)

	log.Println("[INFO] Setting up UploadRoutes...")
	uploadRoute.UploadRoutes(api, db)
}
