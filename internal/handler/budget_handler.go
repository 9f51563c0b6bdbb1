package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/dafibh/fundvision/fundvision-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// UpdateBudgetRequest represents the edit limit request body
type UpdateBudgetRequest struct {
	Limit string `json:"limit"`
}

// CategoryTransactionsResponse lists the spending behind one budget
type CategoryTransactionsResponse struct {
	Category string                `json:"category"`
	Items    []TransactionResponse `json:"items"`
}

// categoryParam returns the unescaped :category route parameter
func categoryParam(c echo.Context) string {
	raw := c.Param("category")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		return unescaped
	}
	return raw
}

// GetBudgets godoc
// @Summary List budgets
// @Description Budgets with utilization and status level
// @Tags budgets
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {array} BudgetResponse
// @Failure 404 {object} ProblemDetails
// @Router /sessions/{sessionId}/budgets [get]
func (h *BudgetHandler) GetBudgets(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	return c.JSON(http.StatusOK, toBudgetResponses(h.budgetService.ListBudgets(sess)))
}

// UpdateBudget godoc
// @Summary Edit a budget limit
// @Tags budgets
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param category path string true "Budget category"
// @Param request body UpdateBudgetRequest true "New limit"
// @Success 200 {object} BudgetResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /sessions/{sessionId}/budgets/{category} [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	var req UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	status, err := h.budgetService.UpdateLimit(sess, categoryParam(c), req.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLimit) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "limit", Message: "Limit must be a non-negative number"},
			})
		}
		if errors.Is(err, domain.ErrBudgetNotFound) {
			return NewNotFoundError(c, "Budget not found")
		}
		log.Error().Err(err).Str("session_id", sess.ID.String()).Msg("Failed to update budget")
		return NewInternalError(c, "Failed to update budget")
	}

	return c.JSON(http.StatusOK, toBudgetResponse(*status))
}

// GetCategoryTransactions godoc
// @Summary Budget drill-down
// @Description Expense transactions in one budget category
// @Tags budgets
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param category path string true "Budget category"
// @Success 200 {object} CategoryTransactionsResponse
// @Failure 404 {object} ProblemDetails
// @Router /sessions/{sessionId}/budgets/{category}/transactions [get]
func (h *BudgetHandler) GetCategoryTransactions(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	category := categoryParam(c)
	transactions, err := h.budgetService.CategoryTransactions(sess, category)
	if err != nil {
		if errors.Is(err, domain.ErrBudgetNotFound) {
			return NewNotFoundError(c, "Budget not found")
		}
		log.Error().Err(err).Str("session_id", sess.ID.String()).Msg("Failed to get category transactions")
		return NewInternalError(c, "Failed to get category transactions")
	}

	name := category
	if parsed, err := domain.ParseCategory(category); err == nil {
		name = string(parsed)
	}

	return c.JSON(http.StatusOK, CategoryTransactionsResponse{
		Category: name,
		Items:    toTransactionResponses(transactions),
	})
}
