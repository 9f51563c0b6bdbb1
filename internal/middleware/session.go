package middleware

import (
	"context"

	"github.com/dafibh/fundvision/fundvision-backend/internal/session"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// SessionKey is the context key for the resolved session
	SessionKey contextKey = "session"
	// SessionIDParam is the route parameter holding the session ID
	SessionIDParam = "sessionId"
)

// SessionLookup resolves a session by ID
type SessionLookup interface {
	Get(id uuid.UUID) (*session.Session, error)
}

// ResolveSession returns an Echo middleware that loads the session named in
// the route and stores it in the request context. Unknown or malformed IDs get a 404.
func ResolveSession(lookup SessionLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Param(SessionIDParam)
			id, err := uuid.Parse(raw)
			if err != nil {
				return sessionNotFoundError(c, "Session not found")
			}

			sess, err := lookup.Get(id)
			if err != nil {
				log.Debug().Str("session_id", raw).Msg("Unknown session")
				return sessionNotFoundError(c, "Session not found")
			}

			ctx := context.WithValue(c.Request().Context(), SessionKey, sess)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetSession extracts the resolved session from the request context
func GetSession(c echo.Context) *session.Session {
	if sess, ok := c.Request().Context().Value(SessionKey).(*session.Session); ok {
		return sess
	}
	return nil
}

// GetSessionID returns the resolved session's ID, or uuid.Nil when there is none
func GetSessionID(c echo.Context) uuid.UUID {
	if sess := GetSession(c); sess != nil {
		return sess.ID
	}
	return uuid.Nil
}

// WithSession returns a copy of ctx carrying sess. Used by tests and internal callers.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, SessionKey, sess)
}
