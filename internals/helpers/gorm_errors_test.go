package helper

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestErrFromDB(t *testing.T) {
	cases := []struct {
		in      error
		code    int
		message string
	}{
		{gorm.ErrRecordNotFound, fiber.StatusNotFound, "Apartment not found"},
		{gorm.ErrDuplicatedKey, fiber.StatusConflict, "Record already exists"},
		{gorm.ErrForeignKeyViolated, fiber.StatusBadRequest, "Referenced record does not exist"},
		{errors.New("connection refused"), fiber.StatusInternalServerError, "Database error"},
	}

	for _, tc := range cases {
		err := ErrFromDB(tc.in, "Apartment not found")
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, tc.code, fe.Code)
		assert.Equal(t, tc.message, fe.Message)
	}
}
