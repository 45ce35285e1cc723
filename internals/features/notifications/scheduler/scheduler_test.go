package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	adminModel "sakanku_backend/internals/features/admins/admin/model"
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
		&adminModel.AdminModel{},
		&rentModel.ApartmentRentModel{},
		&partModel.ApartmentPartModel{},
		&contractModel.RentalContractModel{},
		&notifModel.NotificationModel{},
	))
	return db
}

func seedAdmin(t *testing.T, db *gorm.DB, role adminModel.AdminRole, email string) *adminModel.AdminModel {
	t.Helper()
	a := adminModel.AdminModel{
		FullName: "Test Admin", Email: email, Phone: email,
		Role: role, Password: "irrelevant-hash",
	}
	require.NoError(t, db.Create(&a).Error)
	return &a
}

func seedContractEnding(t *testing.T, db *gorm.DB, end time.Time, active bool) *contractModel.RentalContractModel {
	t.Helper()
	rent := rentModel.ApartmentRentModel{
		Name: "Nile View", Location: "Maadi", Area: 120, Price: 15000,
		ListedByAdminID: 1,
	}
	require.NoError(t, db.Create(&rent).Error)

	part := partModel.ApartmentPartModel{
		ApartmentID: rent.ID, Status: partModel.PartRented,
		Title: "Studio", MonthlyPrice: 5000, CreatedByAdminID: 1,
	}
	require.NoError(t, db.Create(&part).Error)

	c := contractModel.RentalContractModel{
		ApartmentPartID: part.ID,
		CustomerName:    "Ahmed", CustomerPhone: "+201000000000",
		RentPrice:     5000,
		RentStartDate: end.AddDate(0, -6, 0), RentEndDate: end,
		IsActive: active, CreatedByAdminID: 1,
	}
	require.NoError(t, db.Create(&c).Error)
	return &c
}

func notifications(t *testing.T, db *gorm.DB) []notifModel.NotificationModel {
	t.Helper()
	var rows []notifModel.NotificationModel
	require.NoError(t, db.Find(&rows).Error)
	return rows
}

func TestNewAppliesDefaults(t *testing.T) {
	s := New(nil, Config{})
	assert.Equal(t, defaultLookAheadDays, s.cfg.LookAheadDays)
	assert.Equal(t, defaultRunAt, s.cfg.RunAt)

	s = New(nil, Config{LookAheadDays: 14, RunAt: "06:30"})
	assert.Equal(t, 14, s.cfg.LookAheadDays)
	assert.Equal(t, "06:30", s.cfg.RunAt)
}

func TestNextRun(t *testing.T) {
	s := New(nil, Config{RunAt: "09:00"})

	morning := time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC), s.nextRun(morning))

	evening := time.Date(2026, 8, 31, 21, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC), s.nextRun(evening))

	// Unparseable run time falls back to 09:00.
	s = New(nil, Config{RunAt: "whenever"})
	assert.Equal(t, time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC), s.nextRun(morning))
}

func TestRunOnceNotifiesExpiringContracts(t *testing.T) {
	db := openTestDB(t)
	super := seedAdmin(t, db, adminModel.RoleSuperAdmin, "super@test.local")
	seedAdmin(t, db, adminModel.RoleAdmin, "admin@test.local")

	c := seedContractEnding(t, db, time.Now().AddDate(0, 0, 10), true)

	s := New(db, Config{LookAheadDays: 30})
	s.RunOnce()

	rows := notifications(t, db)
	require.Len(t, rows, 1)
	assert.Equal(t, c.ID, rows[0].RentalContractID)
	assert.Equal(t, notifModel.StatusUpcomingEnd, rows[0].Status)
	assert.Equal(t, super.ID, rows[0].NotifyAdminID, "super admin is preferred as recipient")
	assert.False(t, rows[0].IsResolved)

	// A second run is idempotent while the notification stays unresolved.
	s.RunOnce()
	assert.Len(t, notifications(t, db), 1)
}

func TestRunOnceSkipsOutsideWindowAndInactive(t *testing.T) {
	db := openTestDB(t)
	seedAdmin(t, db, adminModel.RoleSuperAdmin, "super@test.local")

	seedContractEnding(t, db, time.Now().AddDate(0, 0, 40), true)  // beyond look-ahead
	seedContractEnding(t, db, time.Now().AddDate(0, 0, 5), false)  // inactive
	seedContractEnding(t, db, time.Now().AddDate(0, 0, -2), true)  // already ended

	s := New(db, Config{LookAheadDays: 30})
	s.RunOnce()

	assert.Empty(t, notifications(t, db))
}

func TestRunOnceFallsBackToFirstAdmin(t *testing.T) {
	db := openTestDB(t)
	admin := seedAdmin(t, db, adminModel.RoleAdmin, "admin@test.local")

	seedContractEnding(t, db, time.Now().AddDate(0, 0, 10), true)

	s := New(db, Config{LookAheadDays: 30})
	s.RunOnce()

	rows := notifications(t, db)
	require.Len(t, rows, 1)
	assert.Equal(t, admin.ID, rows[0].NotifyAdminID)
}

func TestRunOnceWithoutAdminsSkips(t *testing.T) {
	db := openTestDB(t)
	seedContractEnding(t, db, time.Now().AddDate(0, 0, 10), true)

	s := New(db, Config{LookAheadDays: 30})
	s.RunOnce()

	assert.Empty(t, notifications(t, db))
}

func TestStartStopIdempotent(t *testing.T) {
	db := openTestDB(t)
	s := New(db, Config{})

	s.Start()
	s.Start() // second start is a no-op
	s.Stop()
	s.Stop() // second stop is a no-op
}
