package handler

import (
	"github.com/dafibh/fundvision/fundvision-backend/internal/middleware"
	"github.com/dafibh/fundvision/fundvision-backend/internal/session"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups every HTTP handler the API exposes
type Handlers struct {
	Session      *SessionHandler
	Dashboard    *DashboardHandler
	Account      *AccountHandler
	Transaction  *TransactionHandler
	Budget       *BudgetHandler
	Notification *NotificationHandler
	Chat         *ChatHandler
	WebSocket    *WebSocketHandler
}

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, store *session.Store, chatLimiter *middleware.RateLimiter, h Handlers) {
	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", ServeOpenAPI3Spec)

	// API version 1
	api := e.Group("/api/v1")

	// Session lifecycle
	api.POST("/sessions", h.Session.CreateSession)
	api.DELETE("/sessions/:sessionId", h.Session.DeleteSession)

	// Session-scoped routes
	scoped := api.Group("/sessions/:sessionId")
	scoped.Use(middleware.ResolveSession(store))

	scoped.GET("/dashboard", h.Dashboard.GetSummary)
	scoped.GET("/accounts", h.Account.GetAccounts)

	scoped.GET("/transactions", h.Transaction.GetTransactions)
	scoped.POST("/transactions", h.Transaction.CreateTransaction)

	scoped.GET("/budgets", h.Budget.GetBudgets)
	scoped.PUT("/budgets/:category", h.Budget.UpdateBudget)
	scoped.GET("/budgets/:category/transactions", h.Budget.GetCategoryTransactions)

	scoped.GET("/notifications", h.Notification.GetNotifications)
	scoped.PATCH("/notifications/read-all", h.Notification.MarkAllRead)
	scoped.PATCH("/notifications/:id/read", h.Notification.MarkRead)

	scoped.GET("/chat", h.Chat.GetChat)
	scoped.GET("/chat/suggestions", h.Chat.GetSuggestions)
	scoped.POST("/chat/messages", h.Chat.SendMessage, middleware.RateLimitMiddleware(chatLimiter))

	// Real-time updates
	scoped.GET("/ws", h.WebSocket.HandleWS)
}
