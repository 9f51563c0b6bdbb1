package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/dafibh/fundvision/fundvision-backend/internal/service"
	"github.com/dafibh/fundvision/fundvision-backend/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNotifications(t *testing.T) {
	handler := NewNotificationHandler(service.NewNotificationService())
	sess := session.New(session.DefaultSeed())

	c, rec := newSessionContext(t, sess, http.MethodGet, "/api/v1/sessions/x/notifications", "")

	require.NoError(t, handler.GetNotifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response NotificationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response.Items, 4)
	assert.Equal(t, 2, response.UnreadCount)
}

func TestMarkRead(t *testing.T) {
	handler := NewNotificationHandler(service.NewNotificationService())
	sess := session.New(session.DefaultSeed())

	c, rec := newSessionContext(t, sess, http.MethodPatch, "/api/v1/sessions/x/notifications/1/read", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, handler.MarkRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response domain.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "1", response.ID)
	assert.True(t, response.IsRead)
}

func TestMarkRead_NotFound(t *testing.T) {
	handler := NewNotificationHandler(service.NewNotificationService())
	sess := session.New(session.DefaultSeed())

	c, rec := newSessionContext(t, sess, http.MethodPatch, "/api/v1/sessions/x/notifications/99/read", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, handler.MarkRead(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ErrorTypeNotFound, decodeProblem(t, rec).Type)
}

func TestMarkAllRead(t *testing.T) {
	handler := NewNotificationHandler(service.NewNotificationService())
	sess := session.New(session.DefaultSeed())

	c, rec := newSessionContext(t, sess, http.MethodPatch, "/api/v1/sessions/x/notifications/read-all", "")

	require.NoError(t, handler.MarkAllRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response MarkAllReadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Updated)
	assert.Equal(t, 0, response.UnreadCount)
}
