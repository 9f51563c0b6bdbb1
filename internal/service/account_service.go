package service

import (
	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/dafibh/fundvision/fundvision-backend/internal/session"
)

// AccountService handles account-related reads
type AccountService struct{}

// NewAccountService creates a new AccountService
func NewAccountService() *AccountService {
	return &AccountService{}
}

// ListAccounts returns copies of the session accounts in display order
func (s *AccountService) ListAccounts(sess *session.Session) []*domain.Account {
	return sess.Snapshot().Accounts
}

// GetBalances returns the total, bank and cash balances of the session
func (s *AccountService) GetBalances(sess *session.Session) domain.AccountBalances {
	var balances domain.AccountBalances
	sess.View(func(d *session.Data) {
		balances = CalculateBalances(d.Accounts)
	})
	return balances
}
