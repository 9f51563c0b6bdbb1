package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/dafibh/fundvision/fundvision-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransactionRequest represents the create transaction request body
type CreateTransactionRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Date        string `json:"date,omitempty"`
}

// CreateTransactionResponse is the new transaction and everything it touched
type CreateTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	CashAccount AccountResponse     `json:"cashAccount"`
	Budget      *BudgetResponse     `json:"budget,omitempty"`
}

// TransactionListResponse represents a filtered transaction list
type TransactionListResponse struct {
	Filter string                `json:"filter"`
	Items  []TransactionResponse `json:"items"`
}

// GetTransactions godoc
// @Summary List transactions
// @Description Newest first, optionally filtered by type
// @Tags transactions
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param type query string false "all, income or expense" default(all)
// @Success 200 {object} TransactionListResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /sessions/{sessionId}/transactions [get]
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	filter, err := domain.ParseTransactionFilter(c.QueryParam("type"))
	if err != nil {
		return NewValidationError(c, "Invalid filter", []ValidationError{
			{Field: "type", Message: "Must be one of: all, income, expense"},
		})
	}

	transactions := h.transactionService.ListTransactions(sess, filter)
	return c.JSON(http.StatusOK, TransactionListResponse{
		Filter: string(filter),
		Items:  toTransactionResponses(transactions),
	})
}

// CreateTransaction godoc
// @Summary Add a manual transaction
// @Description Prepends a cash transaction and adjusts the cash account
// @Tags transactions
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body CreateTransactionRequest true "Transaction"
// @Success 201 {object} CreateTransactionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /sessions/{sessionId}/transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	var date *time.Time
	if req.Date != "" {
		parsed, err := time.Parse(domain.DateLayout, req.Date)
		if err != nil {
			return NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "date", Message: "Must be in YYYY-MM-DD format"},
			})
		}
		date = &parsed
	}

	result, err := h.transactionService.AddManualTransaction(sess, service.CreateTransactionInput{
		Description: req.Description,
		Amount:      amount,
		Category:    req.Category,
		Type:        domain.TransactionType(req.Type),
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDescriptionRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "description", Message: "Description is required"}})
		case errors.Is(err, domain.ErrDescriptionTooLong):
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "description", Message: "Description must be 255 characters or less"}})
		case errors.Is(err, domain.ErrInvalidAmount):
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "amount", Message: "Amount must be greater than zero"}})
		case errors.Is(err, domain.ErrInvalidType):
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "type", Message: "Type must be income or expense"}})
		case errors.Is(err, domain.ErrInvalidCategory):
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "category", Message: "Unknown category"}})
		case errors.Is(err, domain.ErrInvalidDate):
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "date", Message: "Invalid date"}})
		}
		log.Error().Err(err).Str("session_id", sess.ID.String()).Msg("Failed to add transaction")
		return NewInternalError(c, "Failed to add transaction")
	}

	response := CreateTransactionResponse{
		Transaction: toTransactionResponse(result.Transaction),
		CashAccount: toAccountResponse(result.CashAccount),
	}
	if result.Budget != nil {
		budget := toBudgetResponse(*result.Budget)
		response.Budget = &budget
	}

	return c.JSON(http.StatusCreated, response)
}
