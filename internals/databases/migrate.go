// internals/databases/migrate.go
package database

import (
	"log"

	adminModel "sakanku_backend/internals/features/admins/admin/model"
	partModel "sakanku_backend/internals/features/listings/apartment_part/model"
	rentModel "sakanku_backend/internals/features/listings/apartment_rent/model"
	saleModel "sakanku_backend/internals/features/listings/apartment_sale/model"
	notifModel "sakanku_backend/internals/features/notifications/notification/model"
	contractModel "sakanku_backend/internals/features/rentals/contract/model"
)

// MigrateAll creates or updates the schema for every entity. Parents first so
// the foreign keys resolve.
func MigrateAll() {
	err := DB.AutoMigrate(
		&adminModel.AdminModel{},
		&rentModel.ApartmentRentModel{},
		&saleModel.ApartmentSaleModel{},
		&partModel.ApartmentPartModel{},
		&contractModel.RentalContractModel{},
		&notifModel.NotificationModel{},
	)
	if err != nil {
		log.Fatalf("❌ Database migration failed: %v", err)
	}
	log.Println("✅ Database schema up to date")
}
