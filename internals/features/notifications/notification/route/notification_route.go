// internals/features/notifications/notification/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifController "sakanku_backend/internals/features/notifications/notification/controller"
	authMiddleware "sakanku_backend/internals/middlewares/auth"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctl := notifController.NewNotificationController(db)

	notifications := api.Group("/notifications", authMiddleware.AuthMiddleware(db))
	notifications.Get("/", ctl.ListMine)
	notifications.Get("/all", ctl.ListAll)
	notifications.Get("/unread/count", ctl.UnreadCount)
	notifications.Post("/", ctl.Create)
	notifications.Put("/:id", ctl.Update)
}
