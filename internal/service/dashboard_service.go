package service

import (
	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/dafibh/fundvision/fundvision-backend/internal/session"
	"github.com/dafibh/fundvision/fundvision-backend/internal/util"
)

// DashboardService builds the overview page
type DashboardService struct{}

// NewDashboardService creates a new DashboardService
func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

// GetSummary returns the dashboard summary for a session
func (s *DashboardService) GetSummary(sess *session.Session) *domain.DashboardSummary {
	summary := &domain.DashboardSummary{}

	sess.View(func(d *session.Data) {
		summary.Balances = CalculateBalances(d.Accounts)
		summary.CashSharePercent = CashShare(d.Accounts)
		summary.TotalExpenses = TotalExpenses(d.Transactions)
		summary.TotalIncome = TotalIncome(d.Transactions)
		summary.CategoryBreakdown = CategoryBreakdown(d.Transactions)

		budgets := d.Budgets
		if len(budgets) > domain.DashboardBudgetCount {
			budgets = budgets[:domain.DashboardBudgetCount]
		}
		summary.Budgets = EvaluateBudgets(budgets)
		summary.UnreadAlerts = countUnread(d.Notifications)
	})

	summary.TotalBalanceDisplay = util.FormatINR(summary.Balances.Total)
	summary.BankBalanceDisplay = util.FormatINR(summary.Balances.Bank)
	summary.CashBalanceDisplay = util.FormatINR(summary.Balances.Cash)
	summary.CashShareDisplay = util.FormatPercent(summary.CashSharePercent)

	return summary
}
