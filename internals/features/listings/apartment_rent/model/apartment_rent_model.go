// internals/features/listings/apartment_rent/model/apartment_rent_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

/*
Bathroom access for a listing or studio:
- "private"
- "shared"
*/
type BathroomType string

const (
	BathroomPrivate BathroomType = "private"
	BathroomShared  BathroomType = "shared"
)

// Normalize on scan/save so mixed-case sources stay harmless
func (s *BathroomType) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = BathroomType(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = BathroomType(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s BathroomType) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

// ApartmentRentModel is a parent rental listing that owns studio parts.
// Deleting it cascades to its parts.
type ApartmentRentModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string  `gorm:"size:150;not null" json:"name"`
	Location string  `gorm:"size:150;not null" json:"location"`
	Address  string  `gorm:"size:255" json:"address"`
	Area     float64 `gorm:"not null" json:"area"`
	Number   string  `gorm:"size:50" json:"number"`
	Price    float64 `gorm:"not null" json:"price"`

	Bedrooms    int          `json:"bedrooms"`
	Bathrooms   BathroomType `gorm:"type:varchar(20)" json:"bathrooms"`
	Description string       `gorm:"type:text" json:"description"`

	PhotosURL           datatypes.JSONSlice[string] `gorm:"column:photos_url" json:"photos_url"`
	LocationOnMap       string                      `gorm:"size:500;column:location_on_map" json:"location_on_map"`
	FacilitiesAmenities pq.StringArray              `gorm:"type:text[];column:facilities_amenities" json:"facilities_amenities"`

	// Floor is copied onto each part at part creation time; total_parts is
	// informational and never reconciled against the actual child count.
	Floor      int `json:"floor"`
	TotalParts int `gorm:"column:total_parts" json:"total_parts"`

	ContactNumber   string `gorm:"size:30;column:contact_number" json:"contact_number"`
	ListedByAdminID uint   `gorm:"not null;index;column:listed_by_admin_id" json:"listed_by_admin_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ApartmentRentModel) TableName() string {
	return "apartment_rents"
}
