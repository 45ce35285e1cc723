package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrFromDB maps a GORM error to a fiber error with the right status code.
// notFound is the message used when the record does not exist.
// Requires gorm.Config{TranslateError: true} so driver errors surface as
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func ErrFromDB(err error, notFound string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.NewError(fiber.StatusNotFound, notFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fiber.NewError(fiber.StatusConflict, "Record already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fiber.NewError(fiber.StatusBadRequest, "Referenced record does not exist")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}
}
