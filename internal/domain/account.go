package domain

import (
	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCredit   AccountType = "credit"
	AccountTypeCash     AccountType = "cash"
)

// ValidAccountTypes lists every supported account type
var ValidAccountTypes = map[AccountType]bool{
	AccountTypeChecking: true,
	AccountTypeSavings:  true,
	AccountTypeCredit:   true,
	AccountTypeCash:     true,
}

// Account is a balance-holding account. Balance may be negative for credit accounts.
type Account struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	Type          AccountType     `json:"type"`
	BankName      *string         `json:"bankName,omitempty"`
	AccountNumber *string         `json:"accountNumber,omitempty"`
}

// IsCash reports whether the account holds physical cash
func (a *Account) IsCash() bool {
	return a.Type == AccountTypeCash
}

// DefaultCashAccountID and DefaultCashAccountName identify the cash account
// created on demand when a manual transaction arrives and none exists
const (
	DefaultCashAccountID   = "acc_cash"
	DefaultCashAccountName = "Cash in Hand"
)

// AccountBalances is the balance split shown on the dashboard
type AccountBalances struct {
	Total  decimal.Decimal                 `json:"total"`
	Bank   decimal.Decimal                 `json:"bank"`
	Cash   decimal.Decimal                 `json:"cash"`
	ByType map[AccountType]decimal.Decimal `json:"byType"`
}
