package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// problemDetails represents an RFC 7807 Problem Details response
type problemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// Error types
const (
	errorTypeNotFound  = "https://fundvision.app/errors/not-found"
	errorTypeRateLimit = "https://fundvision.app/errors/rate-limit"
)

// sessionNotFoundError creates a not found response for an unknown session
func sessionNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, problemDetails{
		Type:     errorTypeNotFound,
		Title:    "Session Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// rateLimitError creates a too many requests response
func rateLimitError(c echo.Context, detail string) error {
	return c.JSON(http.StatusTooManyRequests, problemDetails{
		Type:     errorTypeRateLimit,
		Title:    "Rate Limit Exceeded",
		Status:   http.StatusTooManyRequests,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}
