// internals/features/uploads/route/upload_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	uploadController "sakanku_backend/internals/features/uploads/controller"
	uploadService "sakanku_backend/internals/features/uploads/service"
	authMiddleware "sakanku_backend/internals/middlewares/auth"
)

func UploadRoutes(api fiber.Router, db *gorm.DB) {
	ctl := uploadController.NewUploadController(db, uploadService.NewStorageFromEnv())

	uploads := api.Group("/uploads", authMiddleware.AuthMiddleware(db))
	uploads.Post("/photos", ctl.UploadPhotos)
}
