package service

import (
	"strings"
	"time"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/dafibh/fundvision/fundvision-backend/internal/session"
	"github.com/dafibh/fundvision/fundvision-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransactionService handles transaction-related business logic
type TransactionService struct {
	eventPublisher websocket.EventPublisher
}

// NewTransactionService creates a new TransactionService
func NewTransactionService() *TransactionService {
	return &TransactionService{}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *TransactionService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *TransactionService) publishEvent(sessionID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(sessionID, event)
	}
}

// CreateTransactionInput holds the input for a manual transaction
type CreateTransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	Type        domain.TransactionType
	Date        *time.Time
}

// ManualTransactionResult is everything a manual transaction changed
type ManualTransactionResult struct {
	Transaction *domain.Transaction  `json:"transaction"`
	CashAccount *domain.Account      `json:"cashAccount"`
	Budget      *domain.BudgetStatus `json:"budget,omitempty"`
}

// ListTransactions returns the session transactions, newest first, that match filter
func (s *TransactionService) ListTransactions(sess *session.Session, filter domain.TransactionFilter) []*domain.Transaction {
	all := sess.Snapshot().Transactions
	result := make([]*domain.Transaction, 0, len(all))
	for _, tx := range all {
		if filter.Matches(tx) {
			result = append(result, tx)
		}
	}
	return result
}

// AddManualTransaction validates input, prepends the transaction and applies
// it to the cash account. Expenses also raise the matching budget's spent total.
func (s *TransactionService) AddManualTransaction(sess *session.Session, input CreateTransactionInput) (*ManualTransactionResult, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domain.ErrDescriptionRequired
	}
	if len(description) > domain.MaxDescriptionLength {
		return nil, domain.ErrDescriptionTooLong
	}

	if !input.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidType
	}

	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	// Default date to today
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domain.ErrInvalidDate
		}
		date = input.Date.UTC()
	}

	tx := &domain.Transaction{
		ID:          uuid.New().String(),
		Date:        date,
		Amount:      input.Amount,
		Description: description,
		Category:    category,
		Type:        input.Type,
		Source:      domain.TransactionSourceManual,
	}

	result := &ManualTransactionResult{Transaction: tx}
	_ = sess.Update(func(d *session.Data) error {
		d.PrependTransaction(tx)

		cash := d.EnsureCashAccount()
		cash.Balance = cash.Balance.Add(tx.SignedAmount())
		cashCopy := *cash
		result.CashAccount = &cashCopy

		if tx.Type == domain.TransactionTypeExpense {
			if budget, err := d.FindBudget(category); err == nil {
				budget.Spent = budget.Spent.Add(tx.Amount)
				status := EvaluateBudget(budget)
				result.Budget = &status
			}
		}
		return nil
	})

	log.Info().
		Str("session_id", sess.ID.String()).
		Str("transaction_id", tx.ID).
		Str("type", string(tx.Type)).
		Str("category", string(tx.Category)).
		Msg("Manual transaction added")

	s.publishEvent(sess.ID, websocket.TransactionCreated(result))

	return result, nil
}
