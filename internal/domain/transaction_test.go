package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"Food & Dining", CategoryFood, false},
		{"food & dining", CategoryFood, false},
		{"  Transport ", CategoryTransport, false},
		{"UTILITIES", CategoryUtilities, false},
		{"Groceries", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCategory)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTransactionFilter(t *testing.T) {
	tests := []struct {
		input   string
		want    TransactionFilter
		wantErr bool
	}{
		{"", TransactionFilterAll, false},
		{"All", TransactionFilterAll, false},
		{"INCOME", TransactionFilterIncome, false},
		{"expense", TransactionFilterExpense, false},
		{"transfer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTransactionFilter(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFilter)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransactionFilter_Matches(t *testing.T) {
	income := &Transaction{Type: TransactionTypeIncome}
	expense := &Transaction{Type: TransactionTypeExpense}

	assert.True(t, TransactionFilterAll.Matches(income))
	assert.True(t, TransactionFilterAll.Matches(expense))
	assert.True(t, TransactionFilterIncome.Matches(income))
	assert.False(t, TransactionFilterIncome.Matches(expense))
	assert.True(t, TransactionFilterExpense.Matches(expense))
	assert.False(t, TransactionFilterExpense.Matches(income))
}

func TestTransaction_SignedAmount(t *testing.T) {
	expense := &Transaction{Amount: decimal.NewFromInt(150), Type: TransactionTypeExpense}
	income := &Transaction{Amount: decimal.NewFromInt(2500), Type: TransactionTypeIncome}

	assert.True(t, expense.SignedAmount().Equal(decimal.NewFromInt(-150)))
	assert.True(t, income.SignedAmount().Equal(decimal.NewFromInt(2500)))
}

func TestNotification_MarkRead(t *testing.T) {
	n := &Notification{ID: "1"}
	assert.True(t, n.MarkRead())
	assert.True(t, n.IsRead)
	assert.False(t, n.MarkRead(), "second mark should be a no-op")
}
