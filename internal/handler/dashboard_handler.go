package handler

import (
	"net/http"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/dafibh/fundvision/fundvision-backend/internal/service"
	"github.com/dafibh/fundvision/fundvision-backend/internal/util"
	"github.com/labstack/echo/v4"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// CategoryAmountResponse is one slice of the spending pie chart
type CategoryAmountResponse struct {
	Category      string `json:"category"`
	Amount        string `json:"amount"`
	AmountDisplay string `json:"amountDisplay"`
}

// DashboardSummaryResponse represents the dashboard summary API response
type DashboardSummaryResponse struct {
	Balances            BalancesResponse         `json:"balances"`
	TotalBalanceDisplay string                   `json:"totalBalanceDisplay"`
	BankBalanceDisplay  string                   `json:"bankBalanceDisplay"`
	CashBalanceDisplay  string                   `json:"cashBalanceDisplay"`
	CashShare           string                   `json:"cashShare"`
	CashShareDisplay    string                   `json:"cashShareDisplay"`
	TotalExpenses       string                   `json:"totalExpenses"`
	TotalIncome         string                   `json:"totalIncome"`
	CategoryBreakdown   []CategoryAmountResponse `json:"categoryBreakdown"`
	Budgets             []BudgetResponse         `json:"budgets"`
	UnreadAlerts        int                      `json:"unreadAlerts"`
}

func toDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	breakdown := make([]CategoryAmountResponse, len(s.CategoryBreakdown))
	for i, c := range s.CategoryBreakdown {
		breakdown[i] = CategoryAmountResponse{
			Category:      string(c.Category),
			Amount:        c.Amount.StringFixed(2),
			AmountDisplay: util.FormatINR(c.Amount),
		}
	}

	return DashboardSummaryResponse{
		Balances:            toBalancesResponse(s.Balances),
		TotalBalanceDisplay: s.TotalBalanceDisplay,
		BankBalanceDisplay:  s.BankBalanceDisplay,
		CashBalanceDisplay:  s.CashBalanceDisplay,
		CashShare:           s.CashSharePercent.StringFixed(2),
		CashShareDisplay:    s.CashShareDisplay,
		TotalExpenses:       s.TotalExpenses.StringFixed(2),
		TotalIncome:         s.TotalIncome.StringFixed(2),
		CategoryBreakdown:   breakdown,
		Budgets:             toBudgetResponses(s.Budgets),
		UnreadAlerts:        s.UnreadAlerts,
	}
}

// GetSummary godoc
// @Summary Dashboard summary
// @Description Balances, spending breakdown, top budgets and unread alert count
// @Tags dashboard
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} DashboardSummaryResponse
// @Failure 404 {object} ProblemDetails
// @Router /sessions/{sessionId}/dashboard [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	summary := h.dashboardService.GetSummary(sess)
	return c.JSON(http.StatusOK, toDashboardSummaryResponse(summary))
}
