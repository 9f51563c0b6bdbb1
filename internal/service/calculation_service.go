package service

import (
	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// The functions in this file are pure reductions over session data. They never
// fail: empty input yields zero totals.

var hundred = decimal.NewFromInt(100)

// TotalBalance sums every account balance, liabilities included
func TotalBalance(accounts []*domain.Account) decimal.Decimal {
	total := decimal.Zero
	for _, account := range accounts {
		total = total.Add(account.Balance)
	}
	return total
}

// BankBalance sums every non-cash account
func BankBalance(accounts []*domain.Account) decimal.Decimal {
	total := decimal.Zero
	for _, account := range accounts {
		if !account.IsCash() {
			total = total.Add(account.Balance)
		}
	}
	return total
}

// CashBalance sums the cash accounts only
func CashBalance(accounts []*domain.Account) decimal.Decimal {
	total := decimal.Zero
	for _, account := range accounts {
		if account.IsCash() {
			total = total.Add(account.Balance)
		}
	}
	return total
}

// BalanceByType groups balances by account kind
func BalanceByType(accounts []*domain.Account) map[domain.AccountType]decimal.Decimal {
	result := make(map[domain.AccountType]decimal.Decimal)
	for _, account := range accounts {
		result[account.Type] = result[account.Type].Add(account.Balance)
	}
	return result
}

// CalculateBalances builds the dashboard balance split
func CalculateBalances(accounts []*domain.Account) domain.AccountBalances {
	return domain.AccountBalances{
		Total:  TotalBalance(accounts),
		Bank:   BankBalance(accounts),
		Cash:   CashBalance(accounts),
		ByType: BalanceByType(accounts),
	}
}

// CashShare returns cash as a percentage of the total balance.
// A non-positive total gives zero.
func CashShare(accounts []*domain.Account) decimal.Decimal {
	total := TotalBalance(accounts)
	if !total.IsPositive() {
		return decimal.Zero
	}
	return CashBalance(accounts).Div(total).Mul(hundred)
}

// SpendByCategory sums expense amounts per category. Income is ignored.
func SpendByCategory(transactions []*domain.Transaction) map[domain.Category]decimal.Decimal {
	result := make(map[domain.Category]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type != domain.TransactionTypeExpense {
			continue
		}
		result[tx.Category] = result[tx.Category].Add(tx.Amount)
	}
	return result
}

// TotalExpenses sums every expense amount
func TotalExpenses(transactions []*domain.Transaction) decimal.Decimal {
	return sumByType(transactions, domain.TransactionTypeExpense)
}

// TotalIncome sums every income amount
func TotalIncome(transactions []*domain.Transaction) decimal.Decimal {
	return sumByType(transactions, domain.TransactionTypeIncome)
}

func sumByType(transactions []*domain.Transaction, txType domain.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == txType {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// CategoryBreakdown lists spend per category in taxonomy order, omitting
// categories with nothing spent
func CategoryBreakdown(transactions []*domain.Transaction) []domain.CategoryAmount {
	spend := SpendByCategory(transactions)
	result := make([]domain.CategoryAmount, 0, len(spend))
	for _, category := range domain.Categories {
		amount, ok := spend[category]
		if !ok || !amount.IsPositive() {
			continue
		}
		result = append(result, domain.CategoryAmount{Category: category, Amount: amount})
	}
	return result
}

// ExpensesInCategory returns the expense transactions for one category, keeping input order
func ExpensesInCategory(transactions []*domain.Transaction, category domain.Category) []*domain.Transaction {
	result := make([]*domain.Transaction, 0)
	for _, tx := range transactions {
		if tx.Category == category && tx.Type == domain.TransactionTypeExpense {
			result = append(result, tx)
		}
	}
	return result
}

// BudgetUtilization computes spent/limit*100. A zero limit never divides:
// it reports 0%, flagged unbounded when anything was spent.
func BudgetUtilization(budget *domain.Budget) domain.Utilization {
	if !budget.Limit.IsPositive() {
		return domain.Utilization{
			Percent:   decimal.Zero,
			Unbounded: budget.Spent.IsPositive(),
		}
	}
	return domain.Utilization{
		Percent: budget.Spent.Div(budget.Limit).Mul(hundred),
	}
}

// BudgetLevelFor classifies utilization for the budget manager (>80 warning, >100 over)
func BudgetLevelFor(u domain.Utilization) domain.BudgetLevel {
	switch {
	case u.Unbounded, u.Percent.GreaterThan(domain.BudgetOverThreshold):
		return domain.BudgetLevelOver
	case u.Percent.GreaterThan(domain.BudgetWarningThreshold):
		return domain.BudgetLevelWarning
	default:
		return domain.BudgetLevelOnTrack
	}
}

// BudgetToneFor classifies utilization for the dashboard bars (>70 caution, >90 critical)
func BudgetToneFor(u domain.Utilization) domain.BudgetTone {
	switch {
	case u.Unbounded, u.Percent.GreaterThan(domain.BudgetCriticalThreshold):
		return domain.BudgetToneCritical
	case u.Percent.GreaterThan(domain.BudgetCautionThreshold):
		return domain.BudgetToneCaution
	default:
		return domain.BudgetToneHealthy
	}
}

// EvaluateBudget derives the full status for one budget
func EvaluateBudget(budget *domain.Budget) domain.BudgetStatus {
	u := BudgetUtilization(budget)
	return domain.BudgetStatus{
		Budget:      *budget,
		Utilization: u,
		Level:       BudgetLevelFor(u),
		Tone:        BudgetToneFor(u),
		Remaining:   budget.Limit.Sub(budget.Spent),
	}
}

// EvaluateBudgets derives statuses for a budget list, keeping order
func EvaluateBudgets(budgets []*domain.Budget) []domain.BudgetStatus {
	result := make([]domain.BudgetStatus, len(budgets))
	for i, budget := range budgets {
		result[i] = EvaluateBudget(budget)
	}
	return result
}
