package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/dafibh/fundvision/fundvision-backend/internal/middleware"
	"github.com/dafibh/fundvision/fundvision-backend/internal/session"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// SessionHandler handles session lifecycle requests
type SessionHandler struct {
	store *session.Store
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(store *session.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

// SessionResponse represents a created session
type SessionResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// CreateSession godoc
// @Summary Create a session
// @Description Start a new dashboard session seeded with demo data
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c echo.Context) error {
	sess := h.store.Create()

	return c.JSON(http.StatusCreated, SessionResponse{
		ID:        sess.ID.String(),
		CreatedAt: sess.CreatedAt.Format(time.RFC3339),
	})
}

// DeleteSession godoc
// @Summary Delete a session
// @Description Tear down a session and disconnect its listeners
// @Tags sessions
// @Param sessionId path string true "Session ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /sessions/{sessionId} [delete]
func (h *SessionHandler) DeleteSession(c echo.Context) error {
	id, err := uuid.Parse(c.Param(middleware.SessionIDParam))
	if err != nil {
		return NewNotFoundError(c, "Session not found")
	}

	if err := h.store.Delete(id); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return NewNotFoundError(c, "Session not found")
		}
		log.Error().Err(err).Str("session_id", id.String()).Msg("Failed to delete session")
		return NewInternalError(c, "Failed to delete session")
	}

	return c.NoContent(http.StatusNoContent)
}
