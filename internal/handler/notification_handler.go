package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/dafibh/fundvision/fundvision-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// NotificationHandler handles notification feed requests
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// NotificationsResponse lists notifications with the unread count
type NotificationsResponse struct {
	Items       []*domain.Notification `json:"items"`
	UnreadCount int                    `json:"unreadCount"`
}

// MarkAllReadResponse reports how many notifications changed
type MarkAllReadResponse struct {
	Updated     int `json:"updated"`
	UnreadCount int `json:"unreadCount"`
}

// GetNotifications godoc
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} NotificationsResponse
// @Failure 404 {object} ProblemDetails
// @Router /sessions/{sessionId}/notifications [get]
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	return c.JSON(http.StatusOK, NotificationsResponse{
		Items:       h.notificationService.List(sess),
		UnreadCount: h.notificationService.UnreadCount(sess),
	})
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param id path string true "Notification ID"
// @Success 200 {object} domain.Notification
// @Failure 404 {object} ProblemDetails
// @Router /sessions/{sessionId}/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	notification, err := h.notificationService.MarkRead(sess, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			return NewNotFoundError(c, "Notification not found")
		}
		log.Error().Err(err).Str("session_id", sess.ID.String()).Msg("Failed to mark notification read")
		return NewInternalError(c, "Failed to mark notification read")
	}

	return c.JSON(http.StatusOK, notification)
}

// MarkAllRead godoc
// @Summary Mark every notification as read
// @Tags notifications
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} MarkAllReadResponse
// @Failure 404 {object} ProblemDetails
// @Router /sessions/{sessionId}/notifications/read-all [patch]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	updated := h.notificationService.MarkAllRead(sess)
	return c.JSON(http.StatusOK, MarkAllReadResponse{
		Updated:     updated,
		UnreadCount: h.notificationService.UnreadCount(sess),
	})
}
