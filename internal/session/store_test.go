package session

import (
	"sync"
	"testing"
	"time"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateGetDelete(t *testing.T) {
	store := NewStore(0, nil)
	defer store.Stop()

	sess := store.Create()
	assert.Equal(t, 1, store.Count())

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	require.NoError(t, store.Delete(sess.ID))
	assert.Equal(t, 0, store.Count())

	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	err = store.Delete(sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_UsesSeedFunc(t *testing.T) {
	store := NewStore(0, func() Seed {
		return Seed{Budgets: []domain.Budget{{Category: domain.CategoryOther}}}
	})
	defer store.Stop()

	sess := store.Create()
	sess.View(func(d *Data) {
		assert.Empty(t, d.Accounts)
		assert.Len(t, d.Budgets, 1)
	})
}

func TestStore_DeleteRunsEvictHooks(t *testing.T) {
	store := NewStore(0, nil)
	defer store.Stop()

	var evicted []uuid.UUID
	store.OnEvict(func(id uuid.UUID) {
		evicted = append(evicted, id)
	})

	sess := store.Create()
	require.NoError(t, store.Delete(sess.ID))

	assert.Equal(t, []uuid.UUID{sess.ID}, evicted)
}

func TestStore_EvictIdle(t *testing.T) {
	store := NewStore(time.Hour, nil)
	defer store.Stop()

	var mu sync.Mutex
	evicted := 0
	store.OnEvict(func(uuid.UUID) {
		mu.Lock()
		evicted++
		mu.Unlock()
	})

	stale := store.Create()
	fresh := store.Create()

	// Nothing is older than the TTL yet
	assert.Equal(t, 0, store.EvictIdle(time.Now().UTC()))

	later := time.Now().UTC().Add(2 * time.Hour)
	fresh.mu.Lock()
	fresh.lastSeen = later
	fresh.mu.Unlock()

	assert.Equal(t, 1, store.EvictIdle(later.Add(time.Minute)))
	assert.Equal(t, 1, store.Count())

	_, err := store.Get(stale.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = store.Get(fresh.ID)
	assert.NoError(t, err)

	mu.Lock()
	assert.Equal(t, 1, evicted)
	mu.Unlock()
}

func TestStore_EvictIdle_DisabledWithoutTTL(t *testing.T) {
	store := NewStore(0, nil)
	defer store.Stop()

	store.Create()
	assert.Equal(t, 0, store.EvictIdle(time.Now().Add(100*time.Hour)))
	assert.Equal(t, 1, store.Count())
}

func TestStore_StopIsIdempotent(t *testing.T) {
	store := NewStore(time.Minute, nil)
	assert.NotPanics(t, func() {
		store.Stop()
		store.Stop()
	})
}

func TestStore_ConcurrentCreate(t *testing.T) {
	store := NewStore(0, nil)
	defer store.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess := store.Create()
			_, _ = store.Get(sess.ID)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, store.Count())
}
