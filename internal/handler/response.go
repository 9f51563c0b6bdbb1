package handler

import (
	"net/http"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/dafibh/fundvision/fundvision-backend/internal/middleware"
	"github.com/dafibh/fundvision/fundvision-backend/internal/session"
	"github.com/dafibh/fundvision/fundvision-backend/internal/util"
	"github.com/labstack/echo/v4"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation = "https://fundvision.app/errors/validation"
	ErrorTypeNotFound   = "https://fundvision.app/errors/not-found"
	ErrorTypeConflict   = "https://fundvision.app/errors/conflict"
	ErrorTypeInternal   = "https://fundvision.app/errors/internal"
)

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewConflictError creates a conflict error response
func NewConflictError(c echo.Context, detail string) error {
	return c.JSON(http.StatusConflict, ProblemDetails{
		Type:     ErrorTypeConflict,
		Title:    "Conflict",
		Status:   http.StatusConflict,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// requireSession returns the session resolved by middleware.ResolveSession
func requireSession(c echo.Context) (*session.Session, error) {
	sess := middleware.GetSession(c)
	if sess == nil {
		return nil, NewNotFoundError(c, "Session not found")
	}
	return sess, nil
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Balance        string  `json:"balance"`
	BalanceDisplay string  `json:"balanceDisplay"`
	BankName       *string `json:"bankName,omitempty"`
	AccountNumber  *string `json:"accountNumber,omitempty"`
}

func toAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:             a.ID,
		Name:           a.Name,
		Type:           string(a.Type),
		Balance:        a.Balance.StringFixed(2),
		BalanceDisplay: util.FormatINR(a.Balance),
		BankName:       a.BankName,
		AccountNumber:  a.AccountNumber,
	}
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	DateDisplay   string `json:"dateDisplay"`
	Amount        string `json:"amount"`
	AmountDisplay string `json:"amountDisplay"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Type          string `json:"type"`
	Source        string `json:"source"`
}

func toTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		Date:          t.Date.Format(domain.DateLayout),
		DateDisplay:   util.FormatDisplayDate(t.Date),
		Amount:        t.Amount.StringFixed(2),
		AmountDisplay: util.FormatINR(t.Amount),
		Description:   t.Description,
		Category:      string(t.Category),
		Type:          string(t.Type),
		Source:        string(t.Source),
	}
}

func toTransactionResponses(txs []*domain.Transaction) []TransactionResponse {
	result := make([]TransactionResponse, len(txs))
	for i, t := range txs {
		result[i] = toTransactionResponse(t)
	}
	return result
}

// BudgetResponse represents a budget with its derived status
type BudgetResponse struct {
	Category       string `json:"category"`
	Limit          string `json:"limit"`
	Spent          string `json:"spent"`
	Remaining      string `json:"remaining"`
	Percent        string `json:"percent"`
	PercentDisplay string `json:"percentDisplay"`
	Unbounded      bool   `json:"unbounded"`
	Level          string `json:"level"`
	Tone           string `json:"tone"`
}

func toBudgetResponse(s domain.BudgetStatus) BudgetResponse {
	return BudgetResponse{
		Category:       string(s.Category),
		Limit:          s.Limit.StringFixed(2),
		Spent:          s.Spent.StringFixed(2),
		Remaining:      s.Remaining.StringFixed(2),
		Percent:        s.Utilization.Percent.StringFixed(2),
		PercentDisplay: util.FormatPercent(s.Utilization.Percent),
		Unbounded:      s.Utilization.Unbounded,
		Level:          string(s.Level),
		Tone:           string(s.Tone),
	}
}

func toBudgetResponses(statuses []domain.BudgetStatus) []BudgetResponse {
	result := make([]BudgetResponse, len(statuses))
	for i, s := range statuses {
		result[i] = toBudgetResponse(s)
	}
	return result
}

// BalancesResponse represents the balance split
type BalancesResponse struct {
	Total  string            `json:"total"`
	Bank   string            `json:"bank"`
	Cash   string            `json:"cash"`
	ByType map[string]string `json:"byType"`
}

func toBalancesResponse(b domain.AccountBalances) BalancesResponse {
	byType := make(map[string]string, len(b.ByType))
	for t, v := range b.ByType {
		byType[string(t)] = v.StringFixed(2)
	}
	return BalancesResponse{
		Total:  b.Total.StringFixed(2),
		Bank:   b.Bank.StringFixed(2),
		Cash:   b.Cash.StringFixed(2),
		ByType: byType,
	}
}
