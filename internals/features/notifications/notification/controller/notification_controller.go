// internals/features/notifications/notification/controller/notification_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifDTO "sakanku_backend/internals/features/notifications/notification/dto"
	notifModel "sakanku_backend/internals/features/notifications/notification/model"
	notifService "sakanku_backend/internals/features/notifications/notification/service"
	helper "sakanku_backend/internals/helpers"
	"sakanku_backend/internals/helpers/authz"
)

var validate = validator.New()

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

/* ===================== HANDLERS ===================== */

// GET /api/v1/notifications  (addressed to the requesting admin)
func (h *NotificationController) ListMine(c *fiber.Ctx) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return h.list(c, &actor.AdminID)
}

// GET /api/v1/notifications/all  (system wide)
func (h *NotificationController) ListAll(c *fiber.Ctx) error {
	if _, err := authz.ActorFromLocals(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	return h.list(c, nil)
}

// GET /api/v1/notifications/unread/count
func (h *NotificationController) UnreadCount(c *fiber.Ctx) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var count int64
	if err := h.DB.Model(&notifModel.NotificationModel{}).
		Where("notify_admin_id = ? AND is_read = ?", actor.AdminID, false).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"unread_count": count})
}

// POST /api/v1/notifications  (idempotent per unresolved contract+status pair)
func (h *NotificationController) Create(c *fiber.Ctx) error {
	if _, err := authz.ActorFromLocals(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req notifDTO.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidatorError(c, err)
	}

	n, err := notifService.CreateDeduplicated(h.DB,
		req.RentalContractID,
		notifModel.NotificationStatus(req.Status),
		req.NotifyAdminID,
		req.Description,
	)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notification")
	}
	return helper.JsonCreated(c, "Notification created", notifDTO.NewNotificationResponse(n))
}

// PUT /api/v1/notifications/:id  (recipient or super admin)
func (h *NotificationController) Update(c *fiber.Ctx) error {
	actor, err := authz.ActorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	var n notifModel.NotificationModel
	if err := h.DB.First(&n, id).Error; err != nil {
		return helper.FromFiberError(c, helper.ErrFromDB(err, "Notification not found"))
	}
	if n.NotifyAdminID != actor.AdminID && !actor.IsSuperAdmin() {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to update this notification")
	}

	var req notifDTO.UpdateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidatorError(c, err)
	}

	req.ApplyToModel(&n)
	if err := h.DB.Save(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}
	return helper.JsonUpdated(c, "Notification updated", notifDTO.NewNotificationResponse(&n))
}

/* ===================== INTERNAL ===================== */

func (h *NotificationController) list(c *fiber.Ctx, adminID *uint) error {
	paging := helper.ResolvePaging(c, 100, 200)

	q := h.DB.Model(&notifModel.NotificationModel{})
	if adminID != nil {
		q = q.Where("notify_admin_id = ?", *adminID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("status = ?", status)
	}
	if isRead := strings.TrimSpace(c.Query("is_read")); isRead != "" {
		q = q.Where("is_read = ?", isRead == "true")
	}
	if isResolved := strings.TrimSpace(c.Query("is_resolved")); isResolved != "" {
		q = q.Where("is_resolved = ?", isResolved == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	var notifications []notifModel.NotificationModel
	if err := q.Order("created_at DESC").Limit(paging.Limit).Offset(paging.Offset).
		Find(&notifications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	return helper.JsonList(c, "ok", notifDTO.NewNotificationResponses(notifications),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
