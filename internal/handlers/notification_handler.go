package handlers

import (
	"net/http"
	"time"

	"project-management-api/internal/authz"
	"project-management-api/internal/middleware"
	"project-management-api/internal/models"
	"project-management-api/internal/response"

	"github.com/gin-gonic/gin"
)

// NotificationListItem is one row of the caller's notification feed
type NotificationListItem struct {
	ID        uint      `json:"id"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// ListNotifications handles GET /api/notifications
// Returns the caller's own notifications, newest first. Notifications
// are read-only; there is no mutation endpoint.
func (h *Handler) ListNotifications(c *gin.Context) {
	if !authz.Allow(middleware.CallerRole(c), authz.ListRoles...) {
		response.Unauthorized(c)
		return
	}

	var notifications []models.Notification
	if err := h.db.Where("user_id = ?", middleware.CallerID(c)).
		Order("created_at desc").Find(&notifications).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]NotificationListItem, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, NotificationListItem{
			ID:        n.ID,
			Subject:   n.Subject,
			Body:      n.Body,
			CreatedAt: n.CreatedAt,
		})
	}

	response.OK(c, items, "Showing all the notifications.")
}
