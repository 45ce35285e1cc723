// internals/features/listings/apartment_rent/dto/apartment_rent_dto.go
package dto

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	rentModel "sakanku_backend/internals/features/listings/apartment_rent/model"
)

/* ===================== REQUESTS ===================== */

type CreateApartmentRentRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=150"`
	Location string  `json:"location" validate:"required,min=2,max=150"`
	Address  string  `json:"address" validate:"omitempty,max=255"`
	Area     float64 `json:"area" validate:"required,gt=0"`
	Number   string  `json:"number" validate:"omitempty,max=50"`
	Price    float64 `json:"price" validate:"required,gt=0"`

	Bedrooms    int    `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   string `json:"bathrooms" validate:"omitempty,oneof=private shared"`
	Description string `json:"description"`

	PhotosURL           []string `json:"photos_url" validate:"omitempty,dive,url"`
	LocationOnMap       string   `json:"location_on_map" validate:"omitempty,max=500"`
	FacilitiesAmenities []string `json:"facilities_amenities"`

	Floor      int `json:"floor" validate:"omitempty,gte=0"`
	TotalParts int `json:"total_parts" validate:"omitempty,gte=0"`

	ContactNumber string `json:"contact_number" validate:"omitempty,max=30"`
}

func (r *CreateApartmentRentRequest) ToModel(listedBy uint) *rentModel.ApartmentRentModel {
	return &rentModel.ApartmentRentModel{
		Name:                r.Name,
		Location:            r.Location,
		Address:             r.Address,
		Area:                r.Area,
		Number:              r.Number,
		Price:               r.Price,
		Bedrooms:            r.Bedrooms,
		Bathrooms:           rentModel.BathroomType(r.Bathrooms),
		Description:         r.Description,
		PhotosURL:           datatypes.JSONSlice[string](r.PhotosURL),
		LocationOnMap:       r.LocationOnMap,
		FacilitiesAmenities: pq.StringArray(r.FacilitiesAmenities),
		Floor:               r.Floor,
		TotalParts:          r.TotalParts,
		ContactNumber:       r.ContactNumber,
		ListedByAdminID:     listedBy,
	}
}

type UpdateApartmentRentRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=2,max=150"`
	Location *string  `json:"location" validate:"omitempty,min=2,max=150"`
	Address  *string  `json:"address" validate:"omitempty,max=255"`
	Area     *float64 `json:"area" validate:"omitempty,gt=0"`
	Number   *string  `json:"number" validate:"omitempty,max=50"`
	Price    *float64 `json:"price" validate:"omitempty,gt=0"`

	Bedrooms    *int    `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *string `json:"bathrooms" validate:"omitempty,oneof=private shared"`
	Description *string `json:"description"`

	PhotosURL           *[]string `json:"photos_url" validate:"omitempty,dive,url"`
	LocationOnMap       *string   `json:"location_on_map" validate:"omitempty,max=500"`
	FacilitiesAmenities *[]string `json:"facilities_amenities"`

	Floor      *int `json:"floor" validate:"omitempty,gte=0"`
	TotalParts *int `json:"total_parts" validate:"omitempty,gte=0"`

	ContactNumber *string `json:"contact_number" validate:"omitempty,max=30"`
}

// ApplyToModel copies only the provided fields. Changing Floor here does not
// touch existing parts; the part keeps the floor it was created with.
func (r *UpdateApartmentRentRequest) ApplyToModel(m *rentModel.ApartmentRentModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Location != nil {
		m.Location = *r.Location
	}
	if r.Address != nil {
		m.Address = *r.Address
	}
	if r.Area != nil {
		m.Area = *r.Area
	}
	if r.Number != nil {
		m.Number = *r.Number
	}
	if r.Price != nil {
		m.Price = *r.Price
	}
	if r.Bedrooms != nil {
		m.Bedrooms = *r.Bedrooms
	}
	if r.Bathrooms != nil {
		m.Bathrooms = rentModel.BathroomType(*r.Bathrooms)
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.PhotosURL != nil {
		m.PhotosURL = datatypes.JSONSlice[string](*r.PhotosURL)
	}
	if r.LocationOnMap != nil {
		m.LocationOnMap = *r.LocationOnMap
	}
	if r.FacilitiesAmenities != nil {
		m.FacilitiesAmenities = pq.StringArray(*r.FacilitiesAmenities)
	}
	if r.Floor != nil {
		m.Floor = *r.Floor
	}
	if r.TotalParts != nil {
		m.TotalParts = *r.TotalParts
	}
	if r.ContactNumber != nil {
		m.ContactNumber = *r.ContactNumber
	}
}

/* ===================== RESPONSES ===================== */

type ApartmentRentResponse struct {
	ID                  uint      `json:"id"`
	Name                string    `json:"name"`
	Location            string    `json:"location"`
	Address             string    `json:"address"`
	Area                float64   `json:"area"`
	Number              string    `json:"number"`
	Price               float64   `json:"price"`
	Bedrooms            int       `json:"bedrooms"`
	Bathrooms           string    `json:"bathrooms"`
	Description         string    `json:"description"`
	PhotosURL           []string  `json:"photos_url"`
	LocationOnMap       string    `json:"location_on_map"`
	FacilitiesAmenities []string  `json:"facilities_amenities"`
	Floor               int       `json:"floor"`
	TotalParts          int       `json:"total_parts"`
	ContactNumber       string    `json:"contact_number"`
	ListedByAdminID     uint      `json:"listed_by_admin_id"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	// Filled only on the detail endpoint
	Parts any `json:"parts,omitempty"`
}

func NewApartmentRentResponse(m *rentModel.ApartmentRentModel) *ApartmentRentResponse {
	if m == nil {
		return nil
	}
	return &ApartmentRentResponse{
		ID:                  m.ID,
		Name:                m.Name,
		Location:            m.Location,
		Address:             m.Address,
		Area:                m.Area,
		Number:              m.Number,
		Price:               m.Price,
		Bedrooms:            m.Bedrooms,
		Bathrooms:           string(m.Bathrooms),
		Description:         m.Description,
		PhotosURL:           []string(m.PhotosURL),
		LocationOnMap:       m.LocationOnMap,
		FacilitiesAmenities: []string(m.FacilitiesAmenities),
		Floor:               m.Floor,
		TotalParts:          m.TotalParts,
		ContactNumber:       m.ContactNumber,
		ListedByAdminID:     m.ListedByAdminID,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func NewApartmentRentResponses(ms []rentModel.ApartmentRentModel) []ApartmentRentResponse {
	out := make([]ApartmentRentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewApartmentRentResponse(&ms[i]))
	}
	return out
}
