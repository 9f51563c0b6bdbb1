package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dafibh/fundvision/fundvision-backend/internal/advisor"
	"github.com/dafibh/fundvision/fundvision-backend/internal/config"
	"github.com/dafibh/fundvision/fundvision-backend/internal/handler"
	"github.com/dafibh/fundvision/fundvision-backend/internal/middleware"
	"github.com/dafibh/fundvision/fundvision-backend/internal/service"
	"github.com/dafibh/fundvision/fundvision-backend/internal/session"
	"github.com/dafibh/fundvision/fundvision-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title FundVision API
// @version 1.0
// @description Personal-finance dashboard and financial assistant.
// @BasePath /api/v1
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Advice generator
	var generator advisor.Generator
	gemini, err := advisor.NewGeminiGenerator(context.Background(), cfg.Advisor.APIKey, cfg.Advisor.Model)
	if err != nil {
		log.Warn().Err(err).Msg("Advice generation unavailable, chat will answer with the fallback reply")
		generator = advisor.UnavailableGenerator{}
	} else {
		log.Info().Str("model", cfg.Advisor.Model).Msg("Advice generation enabled")
		generator = gemini
	}
	adviceClient := advisor.NewAdvisor(generator, cfg.Advisor.Timeout)

	// Session store
	store := session.NewStore(cfg.SessionTTL, session.DefaultSeed)

	// Initialize WebSocket hub
	hub := websocket.NewHub()

	// Chat rate limiter
	chatLimiter := middleware.NewRateLimiterWithConfig(cfg.ChatRateLimit, cfg.ChatBurst)

	// Drop listeners and limiter state when a session goes away
	store.OnEvict(func(id uuid.UUID) {
		hub.CloseSession(id)
		chatLimiter.Forget(id)
	})

	// Initialize services
	accountService := service.NewAccountService()
	transactionService := service.NewTransactionService()
	transactionService.SetEventPublisher(hub)
	budgetService := service.NewBudgetService()
	budgetService.SetEventPublisher(hub)
	notificationService := service.NewNotificationService()
	notificationService.SetEventPublisher(hub)
	dashboardService := service.NewDashboardService()
	chatService := service.NewChatService(adviceClient, cfg.Advisor.RecentTransactions)
	chatService.SetEventPublisher(hub)

	// Initialize handlers
	handlers := handler.Handlers{
		Session:      handler.NewSessionHandler(store),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Account:      handler.NewAccountHandler(accountService),
		Transaction:  handler.NewTransactionHandler(transactionService),
		Budget:       handler.NewBudgetHandler(budgetService),
		Notification: handler.NewNotificationHandler(notificationService),
		Chat:         handler.NewChatHandler(chatService),
		WebSocket:    handler.NewWebSocketHandler(hub, cfg.CORSOrigins),
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = !cfg.IsProduction()

	// Write timeout leaves room for a full advice round trip
	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = cfg.Advisor.Timeout + 15*time.Second
	e.Server.IdleTimeout = 120 * time.Second

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":   "ok",
			"sessions": store.Count(),
		})
	})

	// Register API routes
	handler.RegisterRoutes(e, store, chatLimiter, handlers)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	store.Stop()
	chatLimiter.Stop()

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			event := log.Info()
			if sessionID := middleware.GetSessionID(c); sessionID != uuid.Nil {
				event = event.Str("session_id", sessionID.String())
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
