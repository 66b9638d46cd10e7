package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	notificationapp "github.com/storefront/backend/internal/application/notification"
	"github.com/storefront/backend/internal/domain/notification"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// NotificationHandler handles admin notification endpoints
type NotificationHandler struct {
	BaseHandler
	service *notificationapp.Service
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(service *notificationapp.Service) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func notificationToResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// List handles GET /notifications. Returns the authenticated admin's
// notifications, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	recipientID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := shared.DefaultFilter()
	filter.Page = req.Page
	filter.PageSize = req.PageSize

	notifications, err := h.service.List(c.Request.Context(), recipientID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = notificationToResponse(&notifications[i])
	}

	h.Success(c, responses)
}

// MarkRead handles PUT /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid notification ID format")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"read": true})
}
