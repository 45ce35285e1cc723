package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	partModel "sakanku_backend/internals/features/listings/apartment_part/model"
	rentModel "sakanku_backend/internals/features/listings/apartment_rent/model"
)

func TestCreateSnapshotsParentFloor(t *testing.T) {
	parent := &rentModel.ApartmentRentModel{ID: 3, Floor: 8}

	req := CreateApartmentPartRequest{
		Title:        "Studio A",
		MonthlyPrice: 5000,
		Bathrooms:    "private",
		Furnished:    "yes",
	}
	m := req.ToModel(parent, 7)

	assert.Equal(t, uint(3), m.ApartmentID)
	assert.Equal(t, 8, m.Floor, "floor is copied from the parent at creation")
	assert.Equal(t, partModel.PartAvailable, m.Status, "new studios always start available")
	assert.Equal(t, uint(7), m.CreatedByAdminID)
	assert.Equal(t, rentModel.BathroomPrivate, m.Bathrooms)
	assert.Equal(t, partModel.YesNoYes, m.Furnished)
}

func TestUpdateNeverTouchesFloor(t *testing.T) {
	m := &partModel.ApartmentPartModel{
		Title: "Studio A", Floor: 8, MonthlyPrice: 5000,
		Status: partModel.PartAvailable,
	}

	title := "Studio A (renovated)"
	price := 6000.0
	status := "rented"
	req := UpdateApartmentPartRequest{
		Title:        &title,
		MonthlyPrice: &price,
		Status:       &status,
	}
	req.ApplyToModel(m)

	assert.Equal(t, "Studio A (renovated)", m.Title)
	assert.Equal(t, 6000.0, m.MonthlyPrice)
	assert.Equal(t, partModel.PartRented, m.Status)
	assert.Equal(t, 8, m.Floor, "the creation-time snapshot survives every update")
}

func TestUpdateSkipsMissingFields(t *testing.T) {
	m := &partModel.ApartmentPartModel{
		Title: "Studio A", MonthlyPrice: 5000,
		Status: partModel.PartAvailable,
	}

	req := UpdateApartmentPartRequest{}
	req.ApplyToModel(m)

	assert.Equal(t, "Studio A", m.Title)
	assert.Equal(t, 5000.0, m.MonthlyPrice)
	assert.Equal(t, partModel.PartAvailable, m.Status)
}
