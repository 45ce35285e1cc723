// internals/features/listings/apartment_part/model/apartment_part_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"gorm.io/datatypes"

	rentModel "sakanku_backend/internals/features/listings/apartment_rent/model"
)

/*
Studio status:
- "available"
- "rented"
- "upcoming_end"
*/
type PartStatus string

const (
	PartAvailable   PartStatus = "available"
	PartRented      PartStatus = "rented"
	PartUpcomingEnd PartStatus = "upcoming_end"
)

func (s *PartStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = PartStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = PartStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s PartStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

type YesNo string

const (
	YesNoYes YesNo = "yes"
	YesNoNo  YesNo = "no"
)

func (s *YesNo) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = YesNo(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = YesNo(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s YesNo) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

// ApartmentPartModel is one rentable studio under a parent rental listing.
// Floor is a snapshot of the parent's floor taken at creation; it is never
// re-synced when the parent changes. At most one contract may reference a
// part (unique FK on rental_contracts.apartment_part_id).
type ApartmentPartModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ApartmentID uint       `gorm:"not null;index;column:apartment_id" json:"apartment_id"`
	Status      PartStatus `gorm:"type:varchar(20);not null;default:'available'" json:"status"`

	Title        string                 `gorm:"size:150" json:"title"`
	Area         float64                `json:"area"`
	Floor        int                    `json:"floor"`
	MonthlyPrice float64                `gorm:"column:monthly_price" json:"monthly_price"`
	Bedrooms     int                    `json:"bedrooms"`
	Bathrooms    rentModel.BathroomType `gorm:"type:varchar(20)" json:"bathrooms"`
	Furnished    YesNo                  `gorm:"type:varchar(5)" json:"furnished"`
	Balcony      YesNo                  `gorm:"type:varchar(5)" json:"balcony"`
	Description  string                 `gorm:"type:text" json:"description"`

	PhotosURL datatypes.JSONSlice[string] `gorm:"column:photos_url" json:"photos_url"`

	CreatedByAdminID uint `gorm:"not null;index;column:created_by_admin_id" json:"created_by_admin_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Apartment *rentModel.ApartmentRentModel `gorm:"foreignKey:ApartmentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ApartmentPartModel) TableName() string {
	return "apartment_parts"
}
