package service

import (
	"strings"
	"testing"
	"time"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/dafibh/fundvision/fundvision-backend/internal/session"
	"github.com/dafibh/fundvision/fundvision-backend/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransactionService() (*TransactionService, *testutil.MockPublisher) {
	publisher := testutil.NewMockPublisher()
	svc := NewTransactionService()
	svc.SetEventPublisher(publisher)
	return svc, publisher
}

func cashSeed(balance string) session.Seed {
	seed := session.DefaultSeed()
	seed.Accounts = append(seed.Accounts, domain.Account{
		ID:      "acc_wallet",
		Name:    "Wallet",
		Balance: decimal.RequireFromString(balance),
		Type:    domain.AccountTypeCash,
	})
	return seed
}

func TestListTransactions_Filter(t *testing.T) {
	sess := session.New(session.DefaultSeed())
	svc, _ := newTransactionService()

	assert.Len(t, svc.ListTransactions(sess, domain.TransactionFilterAll), 8)

	income := svc.ListTransactions(sess, domain.TransactionFilterIncome)
	require.Len(t, income, 1)
	assert.Equal(t, "t3", income[0].ID)

	expenses := svc.ListTransactions(sess, domain.TransactionFilterExpense)
	assert.Len(t, expenses, 7)
	for _, tx := range expenses {
		assert.Equal(t, domain.TransactionTypeExpense, tx.Type)
	}
}

func TestAddManualTransaction_CashExpense(t *testing.T) {
	sess := session.New(cashSeed("500"))
	svc, publisher := newTransactionService()

	result, err := svc.AddManualTransaction(sess, CreateTransactionInput{
		Description: "Chai stall",
		Amount:      decimal.NewFromInt(150),
		Category:    "Food & Dining",
		Type:        domain.TransactionTypeExpense,
	})
	require.NoError(t, err)

	if !result.CashAccount.Balance.Equal(decimal.NewFromInt(350)) {
		t.Errorf("Expected cash balance 350, got %s", result.CashAccount.Balance)
	}
	assert.Equal(t, "acc_wallet", result.CashAccount.ID)
	assert.Equal(t, domain.TransactionSourceManual, result.Transaction.Source)

	// Newest first
	all := svc.ListTransactions(sess, domain.TransactionFilterAll)
	require.Len(t, all, 9)
	assert.Equal(t, result.Transaction.ID, all[0].ID)

	// Budget spent follows the expense
	require.NotNil(t, result.Budget)
	assert.True(t, result.Budget.Spent.Equal(decimal.NewFromInt(470)))

	assert.Equal(t, []string{"transaction.created"}, publisher.Types())
	assert.Equal(t, sess.ID, publisher.Events()[0].SessionID)
}

func TestAddManualTransaction_IncomeAddsToCash(t *testing.T) {
	sess := session.New(cashSeed("500"))
	svc, _ := newTransactionService()

	result, err := svc.AddManualTransaction(sess, CreateTransactionInput{
		Description: "Freelance gig",
		Amount:      decimal.RequireFromString("250.50"),
		Category:    "income",
		Type:        domain.TransactionTypeIncome,
	})
	require.NoError(t, err)

	assert.True(t, result.CashAccount.Balance.Equal(decimal.RequireFromString("750.50")))
	assert.Nil(t, result.Budget)
}

func TestAddManualTransaction_CreatesCashAccount(t *testing.T) {
	sess := session.New(session.DefaultSeed())
	svc, _ := newTransactionService()

	result, err := svc.AddManualTransaction(sess, CreateTransactionInput{
		Description: "Auto rickshaw",
		Amount:      decimal.NewFromInt(80),
		Category:    "Transport",
		Type:        domain.TransactionTypeExpense,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultCashAccountID, result.CashAccount.ID)
	assert.True(t, result.CashAccount.Balance.Equal(decimal.NewFromInt(-80)))

	accounts := NewAccountService().ListAccounts(sess)
	assert.Len(t, accounts, 4)
}

func TestAddManualTransaction_ExpenseWithoutBudget(t *testing.T) {
	sess := session.New(session.DefaultSeed())
	svc, _ := newTransactionService()

	result, err := svc.AddManualTransaction(sess, CreateTransactionInput{
		Description: "Electricity",
		Amount:      decimal.NewFromInt(900),
		Category:    "Utilities",
		Type:        domain.TransactionTypeExpense,
	})
	require.NoError(t, err)
	assert.Nil(t, result.Budget)
}

func TestAddManualTransaction_UsesGivenDate(t *testing.T) {
	sess := session.New(session.DefaultSeed())
	svc, _ := newTransactionService()

	date := time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC)
	result, err := svc.AddManualTransaction(sess, CreateTransactionInput{
		Description: "Books",
		Amount:      decimal.NewFromInt(300),
		Category:    "Shopping",
		Type:        domain.TransactionTypeExpense,
		Date:        &date,
	})
	require.NoError(t, err)
	assert.True(t, result.Transaction.Date.Equal(date))
}

func TestAddManualTransaction_Validation(t *testing.T) {
	valid := CreateTransactionInput{
		Description: "Lunch",
		Amount:      decimal.NewFromInt(100),
		Category:    "Food & Dining",
		Type:        domain.TransactionTypeExpense,
	}
	zero := time.Time{}

	tests := []struct {
		name    string
		mutate  func(in *CreateTransactionInput)
		wantErr error
	}{
		{"empty description", func(in *CreateTransactionInput) { in.Description = "   " }, domain.ErrDescriptionRequired},
		{"long description", func(in *CreateTransactionInput) { in.Description = strings.Repeat("x", 256) }, domain.ErrDescriptionTooLong},
		{"zero amount", func(in *CreateTransactionInput) { in.Amount = decimal.Zero }, domain.ErrInvalidAmount},
		{"negative amount", func(in *CreateTransactionInput) { in.Amount = decimal.NewFromInt(-5) }, domain.ErrInvalidAmount},
		{"bad type", func(in *CreateTransactionInput) { in.Type = "transfer" }, domain.ErrInvalidType},
		{"bad category", func(in *CreateTransactionInput) { in.Category = "Crypto" }, domain.ErrInvalidCategory},
		{"zero date", func(in *CreateTransactionInput) { in.Date = &zero }, domain.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := session.New(session.DefaultSeed())
			svc, publisher := newTransactionService()

			input := valid
			tt.mutate(&input)

			_, err := svc.AddManualTransaction(sess, input)
			assert.ErrorIs(t, err, tt.wantErr)

			// No state change
			assert.Len(t, svc.ListTransactions(sess, domain.TransactionFilterAll), 8)
			assert.Len(t, NewAccountService().ListAccounts(sess), 3)
			assert.Empty(t, publisher.Events())
		})
	}
}
