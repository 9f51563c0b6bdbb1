package domain

import "github.com/shopspring/decimal"

// DashboardBudgetCount is how many budgets the overview card shows
const DashboardBudgetCount = 4

// DashboardSummary contains the overview page metrics
type DashboardSummary struct {
	Balances          AccountBalances  `json:"balances"`
	CashSharePercent  decimal.Decimal  `json:"cashSharePercent"`
	TotalExpenses     decimal.Decimal  `json:"totalExpenses"`
	TotalIncome       decimal.Decimal  `json:"totalIncome"`
	CategoryBreakdown []CategoryAmount `json:"categoryBreakdown"`
	Budgets           []BudgetStatus   `json:"budgets"`
	UnreadAlerts      int              `json:"unreadAlerts"`

	// Pre-formatted strings for the overview cards
	TotalBalanceDisplay string `json:"totalBalanceDisplay"`
	BankBalanceDisplay  string `json:"bankBalanceDisplay"`
	CashBalanceDisplay  string `json:"cashBalanceDisplay"`
	CashShareDisplay    string `json:"cashShareDisplay"`
}
