// internals/features/rentals/contract/model/rental_contract_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	partModel "sakanku_backend/internals/features/listings/apartment_part/model"
)

/*
Where the customer heard about us:
- "facebook", "instagram", "google", "referral", "walk_in", "other"
*/
type CustomerSource string

const (
	SourceFacebook  CustomerSource = "facebook"
	SourceInstagram CustomerSource = "instagram"
	SourceGoogle    CustomerSource = "google"
	SourceReferral  CustomerSource = "referral"
	SourceWalkIn    CustomerSource = "walk_in"
	SourceOther     CustomerSource = "other"
)

func (s *CustomerSource) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = CustomerSource(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = CustomerSource(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s CustomerSource) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

// RentalContractModel binds one customer to exactly one studio. The unique
// index on apartment_part_id is what turns a concurrent double-book into a
// conflict instead of silent corruption.
type RentalContractModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ApartmentPartID uint `gorm:"not null;uniqueIndex;column:apartment_part_id" json:"apartment_part_id"`

	CustomerName         string         `gorm:"size:100;not null;column:customer_name" json:"customer_name"`
	CustomerPhone        string         `gorm:"size:30;not null;column:customer_phone" json:"customer_phone"`
	CustomerIDNumber     string         `gorm:"size:30;column:customer_id_number" json:"customer_id_number"`
	HowDidCustomerFindUs CustomerSource `gorm:"type:varchar(20);column:how_did_customer_find_us" json:"how_did_customer_find_us"`

	PaidDeposit   float64 `gorm:"column:paid_deposit" json:"paid_deposit"`
	WarrantAmount float64 `gorm:"column:warrant_amount" json:"warrant_amount"`
	Commission    float64 `json:"commission"`
	RentPrice     float64 `gorm:"not null;column:rent_price" json:"rent_price"`

	RentStartDate time.Time `gorm:"type:date;not null;column:rent_start_date" json:"rent_start_date"`
	RentEndDate   time.Time `gorm:"type:date;not null;column:rent_end_date" json:"rent_end_date"`
	RentPeriod    int       `gorm:"column:rent_period" json:"rent_period"`

	ContractURL   string `gorm:"size:500;column:contract_url" json:"contract_url"`
	CustomerIDURL string `gorm:"size:500;column:customer_id_url" json:"customer_id_url"`

	IsActive bool `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedByAdminID uint `gorm:"not null;index;column:created_by_admin_id" json:"created_by_admin_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	ApartmentPart *partModel.ApartmentPartModel `gorm:"foreignKey:ApartmentPartID" json:"-"`
}

func (RentalContractModel) TableName() string {
	return "rental_contracts"
}
