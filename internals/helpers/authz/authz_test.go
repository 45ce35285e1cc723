package authz

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sakanku_backend/internals/constants"
	partModel "sakanku_backend/internals/features/listings/apartment_part/model"
	rentModel "sakanku_backend/internals/features/listings/apartment_rent/model"
	saleModel "sakanku_backend/internals/features/listings/apartment_sale/model"
	contractModel "sakanku_backend/internals/features/rentals/contract/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&rentModel.ApartmentRentModel{},
		&saleModel.ApartmentSaleModel{},
		&partModel.ApartmentPartModel{},
		&contractModel.RentalContractModel{},
	))
	return db
}

func TestAuthorizeMutation(t *testing.T) {
	super := Actor{AdminID: 1, Role: constants.RoleSuperAdmin}
	owner := Actor{AdminID: 7, Role: constants.RoleAdmin}
	other := Actor{AdminID: 8, Role: constants.RoleAdmin}

	assert.True(t, AuthorizeMutation(super, 7).Allowed, "super admin mutates anything")
	assert.True(t, AuthorizeMutation(owner, 7).Allowed, "owning admin mutates own listing")

	d := AuthorizeMutation(other, 7)
	assert.False(t, d.Allowed)
	assert.Equal(t, "Only the admin who created this listing can modify it", d.Reason)
}

func TestDecisionErr(t *testing.T) {
	assert.NoError(t, Decision{Allowed: true}.Err())

	err := Decision{Allowed: false, Reason: "nope"}.Err()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
	assert.Equal(t, "nope", fe.Message)
}

func TestOwnerResolvers(t *testing.T) {
	db := openTestDB(t)

	rent := rentModel.ApartmentRentModel{
		Name: "Nile View", Location: "Maadi", Area: 120, Price: 15000,
		Floor: 4, ListedByAdminID: 7,
	}
	require.NoError(t, db.Create(&rent).Error)

	sale := saleModel.ApartmentSaleModel{
		Name: "Zamalek Flat", Location: "Zamalek", Area: 90, Price: 2500000,
		ListedByAdminID: 8,
	}
	require.NoError(t, db.Create(&sale).Error)

	// The part is created by a different admin than the listing owner;
	// ownership still resolves to the listing.
	part := partModel.ApartmentPartModel{
		ApartmentID: rent.ID, Status: partModel.PartAvailable,
		Title: "Studio A", MonthlyPrice: 5000, CreatedByAdminID: 9,
	}
	require.NoError(t, db.Create(&part).Error)

	contract := contractModel.RentalContractModel{
		ApartmentPartID: part.ID,
		CustomerName:    "Ahmed", CustomerPhone: "+201000000000",
		RentPrice:     5000,
		RentStartDate: time.Now(), RentEndDate: time.Now().AddDate(0, 6, 0),
		IsActive: true, CreatedByAdminID: 9,
	}
	require.NoError(t, db.Create(&contract).Error)

	ownerID, err := RentOwner(db, rent.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(7), ownerID)

	ownerID, err = SaleOwner(db, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(8), ownerID)

	ownerID, err = PartOwner(db, part.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(7), ownerID, "part ownership anchors on the parent listing")

	ownerID, err = ContractOwner(db, contract.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(7), ownerID, "contract ownership anchors on the grandparent listing")
}

func TestOwnerResolversMissingIs404(t *testing.T) {
	db := openTestDB(t)

	cases := []struct {
		name    string
		resolve func() (uint, error)
		message string
	}{
		{"rent", func() (uint, error) { return RentOwner(db, 999) }, "Apartment not found"},
		{"sale", func() (uint, error) { return SaleOwner(db, 999) }, "Apartment not found"},
		{"part", func() (uint, error) { return PartOwner(db, 999) }, "Apartment part not found"},
		{"contract", func() (uint, error) { return ContractOwner(db, 999) }, "Rental contract not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.resolve()
			var fe *fiber.Error
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, fiber.StatusNotFound, fe.Code)
			assert.Equal(t, tc.message, fe.Message)
		})
	}
}
