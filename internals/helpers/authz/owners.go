// internals/helpers/authz/owners.go
package authz

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Owner resolvers. Each entity type has exactly one function that answers
// "which admin owns the listing this resource hangs off of"; every
// create/update/delete path goes through these instead of nesting its own
// parent lookups. A missing resource is a 404, never a 403.

func RentOwner(db *gorm.DB, rentID uint) (uint, error) {
	return ownerQuery(db,
		`SELECT listed_by_admin_id FROM apartment_rents WHERE id = ?`,
		rentID, "Apartment not found")
}

func SaleOwner(db *gorm.DB, saleID uint) (uint, error) {
	return ownerQuery(db,
		`SELECT listed_by_admin_id FROM apartment_sales WHERE id = ?`,
		saleID, "Apartment not found")
}

// PartOwner resolves through the part's parent apartment; the part's own
// created_by_admin_id is not the ownership anchor.
func PartOwner(db *gorm.DB, partID uint) (uint, error) {
	return ownerQuery(db,
		`SELECT ar.listed_by_admin_id
		   FROM apartment_parts ap
		   JOIN apartment_rents ar ON ar.id = ap.apartment_id
		  WHERE ap.id = ?`,
		partID, "Apartment part not found")
}

// ContractOwner resolves through part and grandparent apartment.
func ContractOwner(db *gorm.DB, contractID uint) (uint, error) {
	return ownerQuery(db,
		`SELECT ar.listed_by_admin_id
		   FROM rental_contracts rc
		   JOIN apartment_parts ap ON ap.id = rc.apartment_part_id
		   JOIN apartment_rents ar ON ar.id = ap.apartment_id
		  WHERE rc.id = ?`,
		contractID, "Rental contract not found")
}

func ownerQuery(db *gorm.DB, query string, id uint, notFound string) (uint, error) {
	var ownerID uint
	err := db.Raw(query, id).Row().Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fiber.NewError(fiber.StatusNotFound, notFound)
		}
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}
	return ownerID, nil
}
