// internals/features/listings/apartment_part/dto/apartment_part_dto.go
package dto

import (
	"time"

	"gorm.io/datatypes"

	partModel "sakanku_backend/internals/features/listings/apartment_part/model"
	rentModel "sakanku_backend/internals/features/listings/apartment_rent/model"
)

/* ===================== REQUESTS ===================== */

type CreateApartmentPartRequest struct {
	Title        string  `json:"title" validate:"required,min=2,max=150"`
	Area         float64 `json:"area" validate:"omitempty,gt=0"`
	MonthlyPrice float64 `json:"monthly_price" validate:"required,gt=0"`
	Bedrooms     int     `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms    string  `json:"bathrooms" validate:"omitempty,oneof=private shared"`
	Furnished    string  `json:"furnished" validate:"omitempty,oneof=yes no"`
	Balcony      string  `json:"balcony" validate:"omitempty,oneof=yes no"`
	Description  string  `json:"description"`

	PhotosURL []string `json:"photos_url" validate:"omitempty,dive,url"`
}

// ToModel builds the part under its parent. The floor comes from the parent
// listing as it stands right now; later parent updates do not propagate.
func (r *CreateApartmentPartRequest) ToModel(parent *rentModel.ApartmentRentModel, createdBy uint) *partModel.ApartmentPartModel {
	return &partModel.ApartmentPartModel{
		ApartmentID:      parent.ID,
		Status:           partModel.PartAvailable,
		Title:            r.Title,
		Area:             r.Area,
		Floor:            parent.Floor,
		MonthlyPrice:     r.MonthlyPrice,
		Bedrooms:         r.Bedrooms,
		Bathrooms:        rentModel.BathroomType(r.Bathrooms),
		Furnished:        partModel.YesNo(r.Furnished),
		Balcony:          partModel.YesNo(r.Balcony),
		Description:      r.Description,
		PhotosURL:        datatypes.JSONSlice[string](r.PhotosURL),
		CreatedByAdminID: createdBy,
	}
}

type UpdateApartmentPartRequest struct {
	Status       *string  `json:"status" validate:"omitempty,oneof=available rented upcoming_end"`
	Title        *string  `json:"title" validate:"omitempty,min=2,max=150"`
	Area         *float64 `json:"area" validate:"omitempty,gt=0"`
	MonthlyPrice *float64 `json:"monthly_price" validate:"omitempty,gt=0"`
	Bedrooms     *int     `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms    *string  `json:"bathrooms" validate:"omitempty,oneof=private shared"`
	Furnished    *string  `json:"furnished" validate:"omitempty,oneof=yes no"`
	Balcony      *string  `json:"balcony" validate:"omitempty,oneof=yes no"`
	Description  *string  `json:"description"`

	PhotosURL *[]string `json:"photos_url" validate:"omitempty,dive,url"`
}

// ApplyToModel copies only the provided fields. Floor is deliberately not
// updatable; it stays the snapshot taken at creation.
func (r *UpdateApartmentPartRequest) ApplyToModel(m *partModel.ApartmentPartModel) {
	if r.Status != nil {
		m.Status = partModel.PartStatus(*r.Status)
	}
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Area != nil {
		m.Area = *r.Area
	}
	if r.MonthlyPrice != nil {
		m.MonthlyPrice = *r.MonthlyPrice
	}
	if r.Bedrooms != nil {
		m.Bedrooms = *r.Bedrooms
	}
	if r.Bathrooms != nil {
		m.Bathrooms = rentModel.BathroomType(*r.Bathrooms)
	}
	if r.Furnished != nil {
		m.Furnished = partModel.YesNo(*r.Furnished)
	}
	if r.Balcony != nil {
		m.Balcony = partModel.YesNo(*r.Balcony)
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.PhotosURL != nil {
		m.PhotosURL = datatypes.JSONSlice[string](*r.PhotosURL)
	}
}

/* ===================== RESPONSES ===================== */

type ApartmentPartResponse struct {
	ID               uint      `json:"id"`
	ApartmentID      uint      `json:"apartment_id"`
	Status           string    `json:"status"`
	Title            string    `json:"title"`
	Area             float64   `json:"area"`
	Floor            int       `json:"floor"`
	MonthlyPrice     float64   `json:"monthly_price"`
	Bedrooms         int       `json:"bedrooms"`
	Bathrooms        string    `json:"bathrooms"`
	Furnished        string    `json:"furnished"`
	Balcony          string    `json:"balcony"`
	Description      string    `json:"description"`
	PhotosURL        []string  `json:"photos_url"`
	CreatedByAdminID uint      `json:"created_by_admin_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewApartmentPartResponse(m *partModel.ApartmentPartModel) *ApartmentPartResponse {
	if m == nil {
		return nil
	}
	return &ApartmentPartResponse{
		ID:               m.ID,
		ApartmentID:      m.ApartmentID,
		Status:           string(m.Status),
		Title:            m.Title,
		Area:             m.Area,
		Floor:            m.Floor,
		MonthlyPrice:     m.MonthlyPrice,
		Bedrooms:         m.Bedrooms,
		Bathrooms:        string(m.Bathrooms),
		Furnished:        string(m.Furnished),
		Balcony:          string(m.Balcony),
		Description:      m.Description,
		PhotosURL:        []string(m.PhotosURL),
		CreatedByAdminID: m.CreatedByAdminID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func NewApartmentPartResponses(ms []partModel.ApartmentPartModel) []ApartmentPartResponse {
	out := make([]ApartmentPartResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewApartmentPartResponse(&ms[i]))
	}
	return out
}
