// internals/features/rentals/contract/dto/rental_contract_dto.go
package dto

import (
	"time"

	contractModel "sakanku_backend/internals/features/rentals/contract/model"
)

/* ===================== REQUESTS ===================== */

type CreateRentalContractRequest struct {
	ApartmentPartID uint `json:"apartment_part_id" validate:"required,gt=0"`

	CustomerName         string `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerPhone        string `json:"customer_phone" validate:"required,min=7,max=30"`
	CustomerIDNumber     string `json:"customer_id_number" validate:"omitempty,max=30"`
	HowDidCustomerFindUs string `json:"how_did_customer_find_us" validate:"omitempty,oneof=facebook instagram google referral walk_in other"`

	PaidDeposit   float64 `json:"paid_deposit" validate:"omitempty,gte=0"`
	WarrantAmount float64 `json:"warrant_amount" validate:"omitempty,gte=0"`
	Commission    float64 `json:"commission" validate:"omitempty,gte=0"`
	RentPrice     float64 `json:"rent_price" validate:"required,gt=0"`

	RentStartDate time.Time `json:"rent_start_date" validate:"required"`
	RentEndDate   time.Time `json:"rent_end_date" validate:"required,gtfield=RentStartDate"`
	RentPeriod    int       `json:"rent_period" validate:"omitempty,gt=0"`

	ContractURL   string `json:"contract_url" validate:"omitempty,url,max=500"`
	CustomerIDURL string `json:"customer_id_url" validate:"omitempty,url,max=500"`
}

func (r *CreateRentalContractRequest) ToModel(createdBy uint) *contractModel.RentalContractModel {
	return &contractModel.RentalContractModel{
		ApartmentPartID:      r.ApartmentPartID,
		CustomerName:         r.CustomerName,
		CustomerPhone:        r.CustomerPhone,
		CustomerIDNumber:     r.CustomerIDNumber,
		HowDidCustomerFindUs: contractModel.CustomerSource(r.HowDidCustomerFindUs),
		PaidDeposit:          r.PaidDeposit,
		WarrantAmount:        r.WarrantAmount,
		Commission:           r.Commission,
		RentPrice:            r.RentPrice,
		RentStartDate:        r.RentStartDate,
		RentEndDate:          r.RentEndDate,
		RentPeriod:           r.RentPeriod,
		ContractURL:          r.ContractURL,
		CustomerIDURL:        r.CustomerIDURL,
		IsActive:             true,
		CreatedByAdminID:     createdBy,
	}
}

type UpdateRentalContractRequest struct {
	CustomerName         *string `json:"customer_name" validate:"omitempty,min=2,max=100"`
	CustomerPhone        *string `json:"customer_phone" validate:"omitempty,min=7,max=30"`
	CustomerIDNumber     *string `json:"customer_id_number" validate:"omitempty,max=30"`
	HowDidCustomerFindUs *string `json:"how_did_customer_find_us" validate:"omitempty,oneof=facebook instagram google referral walk_in other"`

	PaidDeposit   *float64 `json:"paid_deposit" validate:"omitempty,gte=0"`
	WarrantAmount *float64 `json:"warrant_amount" validate:"omitempty,gte=0"`
	Commission    *float64 `json:"commission" validate:"omitempty,gte=0"`
	RentPrice     *float64 `json:"rent_price" validate:"omitempty,gt=0"`

	RentStartDate *time.Time `json:"rent_start_date"`
	RentEndDate   *time.Time `json:"rent_end_date"`
	RentPeriod    *int       `json:"rent_period" validate:"omitempty,gt=0"`

	ContractURL   *string `json:"contract_url" validate:"omitempty,url,max=500"`
	CustomerIDURL *string `json:"customer_id_url" validate:"omitempty,url,max=500"`

	IsActive *bool `json:"is_active"`
}

func (r *UpdateRentalContractRequest) ApplyToModel(m *contractModel.RentalContractModel) {
	if r.CustomerName != nil {
		m.CustomerName = *r.CustomerName
	}
	if r.CustomerPhone != nil {
		m.CustomerPhone = *r.CustomerPhone
	}
	if r.CustomerIDNumber != nil {
		m.CustomerIDNumber = *r.CustomerIDNumber
	}
	if r.HowDidCustomerFindUs != nil {
		m.HowDidCustomerFindUs = contractModel.CustomerSource(*r.HowDidCustomerFindUs)
	}
	if r.PaidDeposit != nil {
		m.PaidDeposit = *r.PaidDeposit
	}
	if r.WarrantAmount != nil {
		m.WarrantAmount = *r.WarrantAmount
	}
	if r.Commission != nil {
		m.Commission = *r.Commission
	}
	if r.RentPrice != nil {
		m.RentPrice = *r.RentPrice
	}
	if r.RentStartDate != nil {
		m.RentStartDate = *r.RentStartDate
	}
	if r.RentEndDate != nil {
		m.RentEndDate = *r.RentEndDate
	}
	if r.RentPeriod != nil {
		m.RentPeriod = *r.RentPeriod
	}
	if r.ContractURL != nil {
		m.ContractURL = *r.ContractURL
	}
	if r.CustomerIDURL != nil {
		m.CustomerIDURL = *r.CustomerIDURL
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

/* ===================== RESPONSES ===================== */

type RentalContractResponse struct {
	ID                   uint      `json:"id"`
	ApartmentPartID      uint      `json:"apartment_part_id"`
	CustomerName         string    `json:"customer_name"`
	CustomerPhone        string    `json:"customer_phone"`
	CustomerIDNumber     string    `json:"customer_id_number"`
	HowDidCustomerFindUs string    `json:"how_did_customer_find_us"`
	PaidDeposit          float64   `json:"paid_deposit"`
	WarrantAmount        float64   `json:"warrant_amount"`
	Commission           float64   `json:"commission"`
	RentPrice            float64   `json:"rent_price"`
	RentStartDate        time.Time `json:"rent_start_date"`
	RentEndDate          time.Time `json:"rent_end_date"`
	RentPeriod           int       `json:"rent_period"`
	ContractURL          string    `json:"contract_url"`
	CustomerIDURL        string    `json:"customer_id_url"`
	IsActive             bool      `json:"is_active"`
	CreatedByAdminID     uint      `json:"created_by_admin_id"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func NewRentalContractResponse(m *contractModel.RentalContractModel) *RentalContractResponse {
	if m == nil {
		return nil
	}
	return &RentalContractResponse{
		ID:                   m.ID,
		ApartmentPartID:      m.ApartmentPartID,
		CustomerName:         m.CustomerName,
		CustomerPhone:        m.CustomerPhone,
		CustomerIDNumber:     m.CustomerIDNumber,
		HowDidCustomerFindUs: string(m.HowDidCustomerFindUs),
		PaidDeposit:          m.PaidDeposit,
		WarrantAmount:        m.WarrantAmount,
		Commission:           m.Commission,
		RentPrice:            m.RentPrice,
		RentStartDate:        m.RentStartDate,
		RentEndDate:          m.RentEndDate,
		RentPeriod:           m.RentPeriod,
		ContractURL:          m.ContractURL,
		CustomerIDURL:        m.CustomerIDURL,
		IsActive:             m.IsActive,
		CreatedByAdminID:     m.CreatedByAdminID,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func NewRentalContractResponses(ms []contractModel.RentalContractModel) []RentalContractResponse {
	out := make([]RentalContractResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewRentalContractResponse(&ms[i]))
	}
	return out
}
