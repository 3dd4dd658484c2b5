package handler

import (
	"net/http"

	"insygth/internal/apierror"
	"insygth/internal/dto"
	"insygth/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationsHandler struct{ svc service.NotificationService }

func NewNotificationsHandler(svc service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{svc: svc}
}

// Create godoc
// @Summary      Create a notification manually
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateNotificationRequest true "Notification"
// @Success      201  {object} dto.NotificationResponse
// @Router       /api/notifications [post]
func (h *NotificationsHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        unread query bool false "Unread only"
// @Success      200 {object} dto.NotificationListResponse
// @Router       /api/notifications [get]
func (h *NotificationsHandler) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	resp, err := h.svc.List(c.Request.Context(), unreadOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetRead godoc
// @Summary      Mark a notification read or unread
// @Tags         notifications
// @Accept       json
// @Security     BearerAuth
// @Param        id   path string                        true "Notification UUID"
// @Param        body body dto.UpdateNotificationRequest true "Read flag"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /api/notifications/{id} [patch]
func (h *NotificationsHandler) SetRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateNotificationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SetRead(c.Request.Context(), id, *req.Read); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllRead godoc
// @Summary      Mark every notification read
// @Tags         notifications
// @Security     BearerAuth
// @Success      204
// @Router       /api/notifications/read-all [post]
func (h *NotificationsHandler) MarkAllRead(c *gin.Context) {
	if err := h.svc.MarkAllRead(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
