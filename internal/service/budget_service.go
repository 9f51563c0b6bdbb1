package service

import (
	"fmt"
	"strings"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/dafibh/fundvision/fundvision-backend/internal/session"
	"github.com/dafibh/fundvision/fundvision-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetService handles budget-related business logic
type BudgetService struct {
	eventPublisher websocket.EventPublisher
}

// NewBudgetService creates a new BudgetService
func NewBudgetService() *BudgetService {
	return &BudgetService{}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *BudgetService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *BudgetService) publishEvent(sessionID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(sessionID, event)
	}
}

// ParseLimit parses a user-entered budget limit. Anything that is not a
// non-negative number is rejected.
func ParseLimit(raw string) (decimal.Decimal, error) {
	limit, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidLimit, raw)
	}
	if limit.IsNegative() {
		return decimal.Zero, domain.ErrInvalidLimit
	}
	return limit, nil
}

// budgetCategory resolves a category name to a budget category. Names outside
// the taxonomy cannot have a budget.
func budgetCategory(name string) (domain.Category, error) {
	category, err := domain.ParseCategory(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrBudgetNotFound, name)
	}
	return category, nil
}

// ListBudgets returns every budget with its utilization and level
func (s *BudgetService) ListBudgets(sess *session.Session) []domain.BudgetStatus {
	var result []domain.BudgetStatus
	sess.View(func(d *session.Data) {
		result = EvaluateBudgets(d.Budgets)
	})
	return result
}

// UpdateLimit replaces one budget's limit. Invalid input leaves the budget unchanged.
func (s *BudgetService) UpdateLimit(sess *session.Session, categoryName, rawLimit string) (*domain.BudgetStatus, error) {
	category, err := budgetCategory(categoryName)
	if err != nil {
		return nil, err
	}

	limit, err := ParseLimit(rawLimit)
	if err != nil {
		return nil, err
	}

	var status domain.BudgetStatus
	err = sess.Update(func(d *session.Data) error {
		budget, err := d.FindBudget(category)
		if err != nil {
			return err
		}
		budget.Limit = limit
		status = EvaluateBudget(budget)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("session_id", sess.ID.String()).
		Str("category", string(category)).
		Str("limit", limit.String()).
		Msg("Budget limit updated")

	s.publishEvent(sess.ID, websocket.BudgetUpdated(status))

	return &status, nil
}

// CategoryTransactions returns the expense transactions behind one budget, newest first
func (s *BudgetService) CategoryTransactions(sess *session.Session, categoryName string) ([]*domain.Transaction, error) {
	category, err := budgetCategory(categoryName)
	if err != nil {
		return nil, err
	}

	snapshot := sess.Snapshot()
	if _, err := snapshot.FindBudget(category); err != nil {
		return nil, err
	}

	return ExpensesInCategory(snapshot.Transactions, category), nil
}
