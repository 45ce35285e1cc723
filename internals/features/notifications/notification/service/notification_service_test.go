package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	notifModel "sakanku_backend/internals/features/notifications/notification/model"
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

	require.NoError(t, db.AutoMigrate(&notifModel.NotificationModel{}))
	return db
}

func count(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&notifModel.NotificationModel{}).Count(&n).Error)
	return n
}

func TestCreateDeduplicatedWhileUnresolved(t *testing.T) {
	db := openTestDB(t)

	first, err := CreateDeduplicated(db, 10, notifModel.StatusUpcomingEnd, 1, "ends soon")
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	again, err := CreateDeduplicated(db, 10, notifModel.StatusUpcomingEnd, 1, "ends soon (retry)")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID, "unresolved duplicate returns the existing row")
	assert.Equal(t, "ends soon", again.Description, "existing row is returned untouched")
	assert.EqualValues(t, 1, count(t, db))
}

func TestCreateDeduplicatedAfterResolved(t *testing.T) {
	db := openTestDB(t)

	first, err := CreateDeduplicated(db, 10, notifModel.StatusUpcomingEnd, 1, "ends soon")
	require.NoError(t, err)

	require.NoError(t, db.Model(&notifModel.NotificationModel{}).
		Where("id = ?", first.ID).
		Update("is_resolved", true).Error)

	second, err := CreateDeduplicated(db, 10, notifModel.StatusUpcomingEnd, 1, "ends soon again")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID, "resolved rows never block a new one")
	assert.EqualValues(t, 2, count(t, db))
}

func TestCreateDeduplicatedDistinguishesStatusAndContract(t *testing.T) {
	db := openTestDB(t)

	_, err := CreateDeduplicated(db, 10, notifModel.StatusUpcomingEnd, 1, "ends soon")
	require.NoError(t, err)

	_, err = CreateDeduplicated(db, 10, notifModel.StatusUnpaidRent, 1, "rent overdue")
	require.NoError(t, err)

	_, err = CreateDeduplicated(db, 11, notifModel.StatusUpcomingEnd, 1, "ends soon")
	require.NoError(t, err)

	assert.EqualValues(t, 3, count(t, db))
}
