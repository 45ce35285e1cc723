// internals/seeds/listings/seed_listings.go
package listings

import (
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lib/pq"

	"sakanku_backend/internals/constants"
	adminModel "sakanku_backend/internals/features/admins/admin/model"
	partModel "sakanku_backend/internals/features/listings/apartment_part/model"
	rentModel "sakanku_backend/internals/features/listings/apartment_rent/model"
	saleModel "sakanku_backend/internals/features/listings/apartment_sale/model"
)

// SeedSampleListings creates one rent listing with two studios and one sale
// listing, owned by the first super admin. Does nothing when listings exist.
func SeedSampleListings(db *gorm.DB) {
	var count int64
	if err := db.Model(&rentModel.ApartmentRentModel{}).Count(&count).Error; err != nil {
		log.Printf("❌ Listing seed failed: %v", err)
		return
	}
	if count > 0 {
		log.Println("ℹ️ Sample listings already exist, skipping.")
		return
	}

	var owner adminModel.AdminModel
	if err := db.Where("role = ?", constants.RoleSuperAdmin).Order("id ASC").First(&owner).Error; err != nil {
		log.Println("⚠️ No super admin found, skipping listing seed.")
		return
	}

	rent := rentModel.ApartmentRentModel{
		Name:                "Luxury Studio Building in Maadi",
		Location:            "maadi",
		Address:             "123 Maadi Corniche, Cairo, Egypt",
		Area:                50.0,
		Number:              "S-301",
		Price:               4000,
		Bedrooms:            1,
		Bathrooms:           rentModel.BathroomPrivate,
		Description:         "Luxury studios with modern amenities",
		PhotosURL:           datatypes.JSONSlice[string]{"https://example.com/photos/luxury-studio-1.jpg"},
		LocationOnMap:       "https://maps.google.com/example3",
		FacilitiesAmenities: pq.StringArray{"24/7 Security", "Elevator", "Balcony", "Air Conditioning"},
		Floor:               8,
		TotalParts:          2,
		ContactNumber:       owner.Phone,
		ListedByAdminID:     owner.ID,
	}
	if err := db.Create(&rent).Error; err != nil {
		log.Printf("❌ Failed to seed rent listing: %v", err)
		return
	}

	parts := []partModel.ApartmentPartModel{
		{
			ApartmentID:      rent.ID,
			Status:           partModel.PartAvailable,
			Title:            "Studio S-301-A",
			Area:             30.0,
			Floor:            rent.Floor,
			MonthlyPrice:     3500,
			Bedrooms:         1,
			Bathrooms:        rentModel.BathroomPrivate,
			Furnished:        partModel.YesNoYes,
			Balcony:          partModel.YesNoYes,
			Description:      "Cozy studio with balcony and AC",
			CreatedByAdminID: owner.ID,
		},
		{
			ApartmentID:      rent.ID,
			Status:           partModel.PartAvailable,
			Title:            "Studio S-301-B",
			Area:             28.0,
			Floor:            rent.Floor,
			MonthlyPrice:     3400,
			Bedrooms:         1,
			Bathrooms:        rentModel.BathroomPrivate,
			Furnished:        partModel.YesNoNo,
			Balcony:          partModel.YesNoNo,
			Description:      "Bright studio, great value",
			CreatedByAdminID: owner.ID,
		},
	}
	for i := range parts {
		if err := db.Create(&parts[i]).Error; err != nil {
			log.Printf("❌ Failed to seed studio: %v", err)
		}
	}

	sale := saleModel.ApartmentSaleModel{
		Name:                "Family House for Sale",
		Location:            "mokkattam",
		Address:             "789 Green Valley, Cairo, Egypt",
		Area:                120.5,
		Number:              "V-101",
		Price:               465000,
		Bedrooms:            3,
		Bathrooms:           rentModel.BathroomPrivate,
		Description:         "Beautiful family house perfect for investment",
		PhotosURL:           datatypes.JSONSlice[string]{"https://example.com/photos/villa-exterior.jpg"},
		LocationOnMap:       "https://maps.google.com/example6",
		FacilitiesAmenities: pq.StringArray{"Garden", "Parking", "Security"},
		ContactNumber:       owner.Phone,
		ListedByAdminID:     owner.ID,
	}
	if err := db.Create(&sale).Error; err != nil {
		log.Printf("❌ Failed to seed sale listing: %v", err)
		return
	}

	log.Println("✅ Sample listings seeded")
}
