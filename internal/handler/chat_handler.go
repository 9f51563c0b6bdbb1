package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/dafibh/fundvision/fundvision-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ChatHandler handles the financial assistant conversation
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// SendMessageRequest represents a submitted query
type SendMessageRequest struct {
	Query string `json:"query"`
}

// GetChat godoc
// @Summary Conversation state
// @Description Greeting, turn log and whether a reply is pending
// @Tags chat
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} service.ChatState
// @Failure 404 {object} ProblemDetails
// @Router /sessions/{sessionId}/chat [get]
func (h *ChatHandler) GetChat(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	return c.JSON(http.StatusOK, h.chatService.History(sess))
}

// SendMessage godoc
// @Summary Ask the assistant
// @Description Sends the query with the financial context. Advice failures return the fallback reply with 200.
// @Tags chat
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body SendMessageRequest true "Query"
// @Success 200 {object} service.ChatReply
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Router /sessions/{sessionId}/chat/messages [post]
func (h *ChatHandler) SendMessage(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	reply, err := h.chatService.Submit(c.Request().Context(), sess, req.Query)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyQuery):
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "query", Message: "Query is required"}})
		case errors.Is(err, domain.ErrQueryTooLong):
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "query", Message: "Query must be 2000 characters or less"}})
		case errors.Is(err, domain.ErrReplyPending):
			return NewConflictError(c, "A reply is already pending for this session")
		}
		log.Error().Err(err).Str("session_id", sess.ID.String()).Msg("Failed to submit chat message")
		return NewInternalError(c, "Failed to submit message")
	}

	return c.JSON(http.StatusOK, reply)
}

// GetSuggestions godoc
// @Summary Suggested tasks
// @Tags chat
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {array} domain.SuggestedTask
// @Router /sessions/{sessionId}/chat/suggestions [get]
func (h *ChatHandler) GetSuggestions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.chatService.Suggestions())
}
