package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether t is a known transaction type
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// TransactionSource records where a transaction came from
type TransactionSource string

const (
	TransactionSourceSeed   TransactionSource = "seed"
	TransactionSourceManual TransactionSource = "manual"
)

// Category is the fixed spending taxonomy
type Category string

const (
	CategoryFood          Category = "Food & Dining"
	CategoryTransport     Category = "Transport"
	CategoryShopping      Category = "Shopping"
	CategoryHousing       Category = "Housing"
	CategoryEntertainment Category = "Entertainment"
	CategoryIncome        Category = "Income"
	CategoryUtilities     Category = "Utilities"
	CategoryOther         Category = "Other"
)

// Categories holds every category in display order
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryHousing,
	CategoryEntertainment,
	CategoryIncome,
	CategoryUtilities,
	CategoryOther,
}

// IsValid reports whether c is one of Categories
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory matches a category name case-insensitively
func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	for _, known := range Categories {
		if strings.EqualFold(string(known), name) {
			return known, nil
		}
	}
	return "", ErrInvalidCategory
}

// DateLayout is the calendar date format used on the wire and in the advice context
const DateLayout = "2006-01-02"

// Transaction is immutable once created. Amount is always positive; Type decides the sign.
type Transaction struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"date"`
	Amount      decimal.Decimal   `json:"amount"`
	Description string            `json:"description"`
	Category    Category          `json:"category"`
	Type        TransactionType   `json:"type"`
	Source      TransactionSource `json:"source"`
}

// SignedAmount returns the amount with the sign implied by Type
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionFilter selects a subset of the transaction list
type TransactionFilter string

const (
	TransactionFilterAll     TransactionFilter = "all"
	TransactionFilterIncome  TransactionFilter = "income"
	TransactionFilterExpense TransactionFilter = "expense"
)

// ParseTransactionFilter accepts "", "all", "income" or "expense" in any case
func ParseTransactionFilter(raw string) (TransactionFilter, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all":
		return TransactionFilterAll, nil
	case "income":
		return TransactionFilterIncome, nil
	case "expense":
		return TransactionFilterExpense, nil
	}
	return "", ErrInvalidFilter
}

// Matches reports whether t passes the filter
func (f TransactionFilter) Matches(t *Transaction) bool {
	switch f {
	case TransactionFilterIncome:
		return t.Type == TransactionTypeIncome
	case TransactionFilterExpense:
		return t.Type == TransactionTypeExpense
	}
	return true
}

// CategoryAmount is one slice of the spending breakdown
type CategoryAmount struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
