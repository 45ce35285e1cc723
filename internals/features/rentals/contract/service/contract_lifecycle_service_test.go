package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	partModel "sakanku_backend/internals/features/listings/apartment_part/model"
	rentModel "sakanku_backend/internals/features/listings/apartment_rent/model"
	notifModel "sakanku_backend/internals/features/notifications/notification/model"
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
		&partModel.ApartmentPartModel{},
		&contractModel.RentalContractModel{},
		&notifModel.NotificationModel{},
	))
	return db
}

func seedPart(t *testing.T, db *gorm.DB) *partModel.ApartmentPartModel {
	t.Helper()
	rent := rentModel.ApartmentRentModel{
		Name: "Nile View", Location: "Maadi", Area: 120, Price: 15000,
		Floor: 4, ListedByAdminID: 1,
	}
	require.NoError(t, db.Create(&rent).Error)

	part := partModel.ApartmentPartModel{
		ApartmentID: rent.ID, Status: partModel.PartAvailable,
		Title: "Studio A", MonthlyPrice: 5000, CreatedByAdminID: 1,
	}
	require.NoError(t, db.Create(&part).Error)
	return &part
}

func newContract(partID uint) *contractModel.RentalContractModel {
	return &contractModel.RentalContractModel{
		ApartmentPartID: partID,
		CustomerName:    "Ahmed", CustomerPhone: "+201000000000",
		RentPrice:     5000,
		RentStartDate: time.Now(), RentEndDate: time.Now().AddDate(0, 6, 0),
		IsActive: true, CreatedByAdminID: 1,
	}
}

func partStatus(t *testing.T, db *gorm.DB, partID uint) partModel.PartStatus {
	t.Helper()
	var part partModel.ApartmentPartModel
	require.NoError(t, db.First(&part, partID).Error)
	return part.Status
}

func TestCreateContractMarksStudioRented(t *testing.T) {
	db := openTestDB(t)
	part := seedPart(t, db)

	c := newContract(part.ID)
	require.NoError(t, CreateContract(db, c))
	assert.NotZero(t, c.ID)
	assert.Equal(t, partModel.PartRented, partStatus(t, db, part.ID))
}

func TestCreateContractMissingPart(t *testing.T) {
	db := openTestDB(t)

	err := CreateContract(db, newContract(999))
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	assert.Equal(t, "Apartment part not found", fe.Message)
}

func TestCreateContractSecondContractConflicts(t *testing.T) {
	db := openTestDB(t)
	part := seedPart(t, db)

	first := newContract(part.ID)
	require.NoError(t, CreateContract(db, first))

	second := newContract(part.ID)
	second.CustomerName = "Mona"
	err := CreateContract(db, second)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	assert.Equal(t, "This studio already has a rental contract", fe.Message)

	// First contract and studio status survive the failed attempt.
	var count int64
	require.NoError(t, db.Model(&contractModel.RentalContractModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var kept contractModel.RentalContractModel
	require.NoError(t, db.First(&kept, first.ID).Error)
	assert.Equal(t, "Ahmed", kept.CustomerName)
	assert.Equal(t, partModel.PartRented, partStatus(t, db, part.ID))
}

func TestUpdateContractActiveFlipMovesStudio(t *testing.T) {
	db := openTestDB(t)
	part := seedPart(t, db)

	c := newContract(part.ID)
	require.NoError(t, CreateContract(db, c))

	c.IsActive = false
	require.NoError(t, UpdateContract(db, c, true))
	assert.Equal(t, partModel.PartAvailable, partStatus(t, db, part.ID))

	c.IsActive = true
	require.NoError(t, UpdateContract(db, c, false))
	assert.Equal(t, partModel.PartRented, partStatus(t, db, part.ID))
}

func TestUpdateContractWithoutFlipLeavesStudio(t *testing.T) {
	db := openTestDB(t)
	part := seedPart(t, db)

	c := newContract(part.ID)
	require.NoError(t, CreateContract(db, c))

	c.RentPrice = 5500
	require.NoError(t, UpdateContract(db, c, true))
	assert.Equal(t, partModel.PartRented, partStatus(t, db, part.ID))
}

func TestDeleteContractFreesStudioAndNotifications(t *testing.T) {
	db := openTestDB(t)
	part := seedPart(t, db)

	c := newContract(part.ID)
	require.NoError(t, CreateContract(db, c))

	n := notifModel.NotificationModel{
		RentalContractID: c.ID,
		Status:           notifModel.StatusUpcomingEnd,
		NotifyAdminID:    1,
		Description:      "ends soon",
	}
	require.NoError(t, db.Create(&n).Error)

	require.NoError(t, DeleteContract(db, c.ID))

	var contracts, notifications int64
	require.NoError(t, db.Model(&contractModel.RentalContractModel{}).Count(&contracts).Error)
	require.NoError(t, db.Model(&notifModel.NotificationModel{}).Count(&notifications).Error)
	assert.Zero(t, contracts)
	assert.Zero(t, notifications)
	assert.Equal(t, partModel.PartAvailable, partStatus(t, db, part.ID))
}

func TestDeleteContractMissing(t *testing.T) {
	db := openTestDB(t)

	err := DeleteContract(db, 999)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}
