package session

import (
	"sync"
	"time"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/google/uuid"
)

// Seed is the initial data a session starts from
type Seed struct {
	Accounts      []domain.Account
	Transactions  []domain.Transaction
	Budgets       []domain.Budget
	Notifications []domain.Notification
}

// Data is the mutable state of a session. It is only handed out inside
// View and Update, under the session lock.
type Data struct {
	Accounts      []*domain.Account
	Transactions  []*domain.Transaction // newest first
	Budgets       []*domain.Budget
	Notifications []*domain.Notification
}

// Session is the state of one dashboard. Nothing in it is shared with other sessions.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu           sync.RWMutex
	lastSeen     time.Time
	data         Data
	conversation *domain.Conversation
}

// New creates a session initialised from seed. The seed is copied.
func New(seed Seed) *Session {
	now := time.Now().UTC()
	s := &Session{
		ID:           uuid.New(),
		CreatedAt:    now,
		lastSeen:     now,
		conversation: domain.NewConversation(),
	}

	for i := range seed.Accounts {
		a := seed.Accounts[i]
		s.data.Accounts = append(s.data.Accounts, &a)
	}
	for i := range seed.Transactions {
		t := seed.Transactions[i]
		s.data.Transactions = append(s.data.Transactions, &t)
	}
	for i := range seed.Budgets {
		b := seed.Budgets[i]
		s.data.Budgets = append(s.data.Budgets, &b)
	}
	for i := range seed.Notifications {
		n := seed.Notifications[i]
		s.data.Notifications = append(s.data.Notifications, &n)
	}

	return s
}

// Conversation returns the session's chat state machine
func (s *Session) Conversation() *domain.Conversation {
	return s.conversation
}

// Touch marks the session as used now
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now().UTC()
	s.mu.Unlock()
}

// LastSeen returns when the session was last used
func (s *Session) LastSeen() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}

// View runs fn with read access to the session data. fn must not retain or modify it.
func (s *Session) View(fn func(d *Data)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

// Update runs fn with write access to the session data. The changes made by
// fn are kept even when it returns an error, so fn must validate before mutating.
func (s *Session) Update(fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}

// Snapshot returns a deep copy of the session data
func (s *Session) Snapshot() Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Clone deep-copies the data so it can be used outside the session lock
func (d *Data) Clone() Data {
	out := Data{
		Accounts:      make([]*domain.Account, len(d.Accounts)),
		Transactions:  make([]*domain.Transaction, len(d.Transactions)),
		Budgets:       make([]*domain.Budget, len(d.Budgets)),
		Notifications: make([]*domain.Notification, len(d.Notifications)),
	}
	for i, a := range d.Accounts {
		c := *a
		out.Accounts[i] = &c
	}
	for i, t := range d.Transactions {
		c := *t
		out.Transactions[i] = &c
	}
	for i, b := range d.Budgets {
		c := *b
		out.Budgets[i] = &c
	}
	for i, n := range d.Notifications {
		c := *n
		out.Notifications[i] = &c
	}
	return out
}

// FindBudget returns the budget for category
func (d *Data) FindBudget(category domain.Category) (*domain.Budget, error) {
	for _, b := range d.Budgets {
		if b.Category == category {
			return b, nil
		}
	}
	return nil, domain.ErrBudgetNotFound
}

// FindNotification returns the notification with the given id
func (d *Data) FindNotification(id string) (*domain.Notification, error) {
	for _, n := range d.Notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}

// CashAccount returns the designated cash account: the first account of type cash
func (d *Data) CashAccount() *domain.Account {
	for _, a := range d.Accounts {
		if a.IsCash() {
			return a
		}
	}
	return nil
}

// EnsureCashAccount returns the cash account, creating an empty one when none exists
func (d *Data) EnsureCashAccount() *domain.Account {
	if cash := d.CashAccount(); cash != nil {
		return cash
	}
	cash := &domain.Account{
		ID:   domain.DefaultCashAccountID,
		Name: domain.DefaultCashAccountName,
		Type: domain.AccountTypeCash,
	}
	d.Accounts = append(d.Accounts, cash)
	return cash
}

// PrependTransaction adds tx as the newest transaction
func (d *Data) PrependTransaction(tx *domain.Transaction) {
	d.Transactions = append([]*domain.Transaction{tx}, d.Transactions...)
}
