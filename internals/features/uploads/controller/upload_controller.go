// internals/features/uploads/controller/upload_controller.go
package controller

import (
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	partModel "sakanku_backend/internals/features/listings/apartment_part/model"
	rentModel "sakanku_backend/internals/features/listings/apartment_rent/model"
	saleModel "sakanku_backend/internals/features/listings/apartment_sale/model"
	uploadService "sakanku_backend/internals/features/uploads/service"
	helper "sakanku_backend/internals/helpers"
	"sakanku_backend/internals/helpers/authz"
)

const maxUploadSize = 5 * 1024 * 1024 // per file

type UploadController struct {
	DB      *gorm.DB
	Storage uploadService.Storage
}

func NewUploadController(db *gorm.DB, storage uploadService.Storage) *UploadController {
	return &UploadController{DB: db, Storage: storage}
}

// POST /api/v1/uploads/photos
// Multipart form: entity_type (rent|sale|part), entity_id, files. Each image
// is re-encoded to webp, stored, and its URL appended to the entity's photo
// list (deduplicated, original order kept).
func (h *UploadController) UploadPhotos(c *fiber.Ctx) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	entityType := strings.ToLower(strings.TrimSpace(c.FormValue("entity_type")))
	if entityType != "rent" && entityType != "sale" && entityType != "part" {
		return helper.JsonError(c, fiber.StatusBadRequest, "entity_type must be one of: rent, sale, part")
	}
	entityID, err := strconv.ParseUint(strings.TrimSpace(c.FormValue("entity_id")), 10, 64)
	if err != nil || entityID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "entity_id is required")
	}
	return h.uploadTo(c, actor, entityType, uint(entityID))
}

func (h *UploadController) uploadTo(c *fiber.Ctx, actor authz.Actor, entityType string, entityID uint) error {

	ownerID, err := h.resolveOwner(entityType, entityID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := authz.AuthorizeMutation(actor, ownerID).Err(); err != nil {
		return helper.FromFiberError(c, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid multipart form")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No files provided")
	}

	opts := uploadService.DefaultWebPOptionsFromEnv()
	var newURLs []string
	for _, fh := range files {
		if fh.Size > maxUploadSize {
			return helper.JsonError(c, fiber.StatusBadRequest, "File too large (max 5 MB)")
		}
		f, err := fh.Open()
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Failed to read uploaded file")
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Failed to read uploaded file")
		}

		converted, name, err := uploadService.ConvertToWebP(data, fh.Filename, opts)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unsupported or corrupt image: "+fh.Filename)
		}
		url, err := h.Storage.SaveFile(entityType, entityID, name, converted)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save uploaded files")
		}
		newURLs = append(newURLs, url)
	}

	merged, err := h.appendPhotoURLs(entityType, entityID, newURLs)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Photos uploaded", fiber.Map{
		"entity_type": entityType,
		"entity_id":   entityID,
		"photos_url":  merged,
	})
}

/* ===================== INTERNAL ===================== */

func (h *UploadController) resolveOwner(entityType string, entityID uint) (uint, error) {
	switch entityType {
	case "rent":
		return authz.RentOwner(h.DB, entityID)
	case "sale":
		return authz.SaleOwner(h.DB, entityID)
	default:
		return authz.PartOwner(h.DB, entityID)
	}
}

// appendPhotoURLs merges the new URLs into the entity's existing list inside
// one transaction, skipping duplicates and keeping insertion order.
func (h *UploadController) appendPhotoURLs(entityType string, entityID uint, newURLs []string) ([]string, error) {
	var merged []string
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		switch entityType {
		case "rent":
			var m rentModel.ApartmentRentModel
			if err := tx.First(&m, entityID).Error; err != nil {
				return helper.ErrFromDB(err, "Target entity not found")
			}
			merged = mergeURLs(m.PhotosURL, newURLs)
			return tx.Model(&m).Update("photos_url", datatypes.JSONSlice[string](merged)).Error
		case "sale":
			var m saleModel.ApartmentSaleModel
			if err := tx.First(&m, entityID).Error; err != nil {
				return helper.ErrFromDB(err, "Target entity not found")
			}
			merged = mergeURLs(m.PhotosURL, newURLs)
			return tx.Model(&m).Update("photos_url", datatypes.JSONSlice[string](merged)).Error
		default:
			var m partModel.ApartmentPartModel
			if err := tx.First(&m, entityID).Error; err != nil {
				return helper.ErrFromDB(err, "Target entity not found")
			}
			merged = mergeURLs(m.PhotosURL, newURLs)
			return tx.Model(&m).Update("photos_url", datatypes.JSONSlice[string](merged)).Error
		}
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func mergeURLs(existing []string, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	out := make([]string, 0, len(existing)+len(incoming))
	for _, u := range existing {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	for _, u := range incoming {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
