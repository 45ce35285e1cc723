package seeds

import (
	"gorm.io/gorm"

	adminSeeds "sakanku_backend/internals/seeds/admins"
	listingSeeds "sakanku_backend/internals/seeds/listings"
)

// RunAllSeeds loads the development fixtures. Every seed is idempotent, so
// running this against an already-populated database is harmless.
func RunAllSeeds(db *gorm.DB) {
	adminSeeds.SeedAdminsFromJSON(db, "internals/seeds/admins/data_admins.json")
	listingSeeds.SeedSampleListings(db)
}
