package session

import (
	"time"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/shopspring/decimal"
)

func seedDate(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func seedTx(id, date, amount, description string, category domain.Category, txType domain.TransactionType) domain.Transaction {
	return domain.Transaction{
		ID:          id,
		Date:        seedDate(date),
		Amount:      decimal.RequireFromString(amount),
		Description: description,
		Category:    category,
		Type:        txType,
		Source:      domain.TransactionSourceSeed,
	}
}

// DefaultSeed returns the demo dashboard data every new session starts with
func DefaultSeed() Seed {
	return Seed{
		Accounts: []domain.Account{
			{ID: "acc_1", Name: "Main Checking", Balance: decimal.RequireFromString("4250.75"), Type: domain.AccountTypeChecking},
			{ID: "acc_2", Name: "Emergency Fund", Balance: decimal.RequireFromString("12000.00"), Type: domain.AccountTypeSavings},
			{ID: "acc_3", Name: "Travel Credit Card", Balance: decimal.RequireFromString("-840.20"), Type: domain.AccountTypeCredit},
		},
		Transactions: []domain.Transaction{
			seedTx("t1", "2023-10-25", "120.50", "Whole Foods Market", domain.CategoryFood, domain.TransactionTypeExpense),
			seedTx("t2", "2023-10-24", "45.00", "Shell Gas Station", domain.CategoryTransport, domain.TransactionTypeExpense),
			seedTx("t3", "2023-10-23", "2500.00", "Monthly Salary", domain.CategoryIncome, domain.TransactionTypeIncome),
			seedTx("t4", "2023-10-22", "15.99", "Netflix Subscription", domain.CategoryEntertainment, domain.TransactionTypeExpense),
			seedTx("t5", "2023-10-21", "1200.00", "Rent Payment", domain.CategoryHousing, domain.TransactionTypeExpense),
			seedTx("t6", "2023-10-20", "85.30", "Amazon.com", domain.CategoryShopping, domain.TransactionTypeExpense),
			seedTx("t7", "2023-10-19", "55.00", "Starbucks Coffee", domain.CategoryFood, domain.TransactionTypeExpense),
			seedTx("t8", "2023-10-18", "110.00", "Utility Bill", domain.CategoryUtilities, domain.TransactionTypeExpense),
		},
		Budgets: []domain.Budget{
			{Category: domain.CategoryFood, Limit: decimal.NewFromInt(500), Spent: decimal.NewFromInt(320)},
			{Category: domain.CategoryTransport, Limit: decimal.NewFromInt(200), Spent: decimal.NewFromInt(145)},
			{Category: domain.CategoryEntertainment, Limit: decimal.NewFromInt(100), Spent: decimal.NewFromInt(85)},
			{Category: domain.CategoryShopping, Limit: decimal.NewFromInt(300), Spent: decimal.NewFromInt(210)},
		},
		Notifications: []domain.Notification{
			{
				ID:      "1",
				Type:    domain.NotificationTypeAlert,
				Title:   "Budget Warning",
				Message: "You have reached 90% of your Shopping budget. Maybe hold off on that next purchase?",
				Time:    "2 hours ago",
			},
			{
				ID:      "2",
				Type:    domain.NotificationTypeTip,
				Title:   "AI Smart Tip",
				Message: "Your 'Food & Dining' spend is 15% higher this week. FundVision AI suggests meal prepping to save approx ₹1,200/month.",
				Time:    "5 hours ago",
			},
			{
				ID:      "3",
				Type:    domain.NotificationTypeSuccess,
				Title:   "Goal Milestone!",
				Message: "Congratulations! You're now 70% towards your 'Dream Home' savings goal.",
				Time:    "1 day ago",
				IsRead:  true,
			},
			{
				ID:      "4",
				Type:    domain.NotificationTypeTip,
				Title:   "Investment Insight",
				Message: "You have ₹5,000 sitting idle in your checking account. Consider moving it to a liquid fund for better returns.",
				Time:    "2 days ago",
				IsRead:  true,
			},
		},
	}
}
