// internals/features/listings/apartment_sale/model/apartment_sale_model.go
package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	rentModel "sakanku_backend/internals/features/listings/apartment_rent/model"
)

// ApartmentSaleModel represents a whole apartment listed for sale.
type ApartmentSaleModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string  `gorm:"size:150;not null" json:"name"`
	Location string  `gorm:"size:150;not null" json:"location"`
	Address  string  `gorm:"size:255" json:"address"`
	Area     float64 `gorm:"not null" json:"area"`
	Number   string  `gorm:"size:50" json:"number"`
	Price    float64 `gorm:"not null" json:"price"`

	Bedrooms    int                    `json:"bedrooms"`
	Bathrooms   rentModel.BathroomType `gorm:"type:varchar(20)" json:"bathrooms"`
	Description string                 `gorm:"type:text" json:"description"`

	PhotosURL           datatypes.JSONSlice[string] `gorm:"column:photos_url" json:"photos_url"`
	LocationOnMap       string                      `gorm:"size:500;column:location_on_map" json:"location_on_map"`
	FacilitiesAmenities pq.StringArray              `gorm:"type:text[];column:facilities_amenities" json:"facilities_amenities"`

	ContactNumber   string `gorm:"size:30;column:contact_number" json:"contact_number"`
	ListedByAdminID uint   `gorm:"not null;index;column:listed_by_admin_id" json:"listed_by_admin_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ApartmentSaleModel) TableName() string {
	return "apartment_sales"
}
