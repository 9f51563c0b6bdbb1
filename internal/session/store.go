package session

import (
	"sync"
	"time"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultTTL is how long an idle session is kept
	DefaultTTL = 2 * time.Hour
	// CleanupInterval is the interval between eviction sweeps
	CleanupInterval = 5 * time.Minute
)

// Store keeps sessions in memory and evicts idle ones
type Store struct {
	sessions map[uuid.UUID]*Session
	mu       sync.RWMutex
	ttl      time.Duration
	seed     func() Seed
	onEvict  []func(id uuid.UUID)
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewStore creates a store whose sessions start from seed. A positive ttl
// starts the background eviction; call Stop to end it.
func NewStore(ttl time.Duration, seed func() Seed) *Store {
	if seed == nil {
		seed = DefaultSeed
	}
	s := &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		seed:     seed,
		stopCh:   make(chan struct{}),
	}

	if ttl > 0 {
		go s.cleanup()
	}

	return s
}

// OnEvict registers fn to run after a session is deleted or evicted
func (s *Store) OnEvict(fn func(id uuid.UUID)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvict = append(s.onEvict, fn)
}

// Create makes a new seeded session
func (s *Store) Create() *Session {
	sess := New(s.seed())

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	log.Info().Str("session_id", sess.ID.String()).Msg("Session created")
	return sess
}

// Get returns the session and marks it as used
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	sess.Touch()
	return sess, nil
}

// Delete tears a session down
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	hooks := s.onEvict
	s.mu.Unlock()

	for _, fn := range hooks {
		fn(id)
	}
	log.Info().Str("session_id", id.String()).Msg("Session deleted")
	return nil
}

// Count returns the number of live sessions
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// EvictIdle removes sessions idle for longer than the TTL and returns how many were removed
func (s *Store) EvictIdle(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	var evicted []uuid.UUID
	for id, sess := range s.sessions {
		if now.Sub(sess.LastSeen()) > s.ttl {
			delete(s.sessions, id)
			evicted = append(evicted, id)
		}
	}
	hooks := s.onEvict
	s.mu.Unlock()

	for _, id := range evicted {
		for _, fn := range hooks {
			fn(id)
		}
		log.Debug().Str("session_id", id.String()).Msg("Evicted idle session")
	}
	return len(evicted)
}

// cleanup periodically evicts idle sessions
func (s *Store) cleanup() {
	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.EvictIdle(time.Now().UTC())
		case <-s.stopCh:
			return
		}
	}
}

// Stop stops the cleanup goroutine
func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}
