package websocket

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for Client that captures sent messages
type mockClient struct {
	id        string
	sessionID uuid.UUID
	messages  [][]byte
	mu        sync.Mutex
	closed    bool
}

func newMockClient(id string, sessionID uuid.UUID) *mockClient {
	return &mockClient{
		id:        id,
		sessionID: sessionID,
		messages:  make([][]byte, 0),
	}
}

func (m *mockClient) ID() string {
	return m.id
}

func (m *mockClient) SessionID() uuid.UUID {
	return m.sessionID
}

func (m *mockClient) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClientClosed
	}
	m.messages = append(m.messages, data)
	return nil
}

func (m *mockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockClient) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *mockClient) GetMessages() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([][]byte, len(m.messages))
	copy(copied, m.messages)
	return copied
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()
	sessionA := uuid.New()
	sessionB := uuid.New()

	client1 := newMockClient("client-1", sessionA)
	client2 := newMockClient("client-2", sessionA)
	client3 := newMockClient("client-3", sessionB)

	hub.Register(client1)
	hub.Register(client2)
	hub.Register(client3)

	assert.Equal(t, 2, hub.ClientCount(sessionA))
	assert.Equal(t, 1, hub.ClientCount(sessionB))
	assert.Equal(t, 0, hub.ClientCount(uuid.New()))
	assert.Equal(t, 3, hub.TotalClientCount())

	hub.Unregister(client1)
	assert.Equal(t, 1, hub.ClientCount(sessionA))

	hub.Unregister(client2)
	hub.Unregister(client3)
	assert.Equal(t, 0, hub.ClientCount(sessionA))
	assert.Equal(t, 0, hub.ClientCount(sessionB))
}

func TestHub_Broadcast_SessionIsolation(t *testing.T) {
	hub := NewHub()
	sessionA := uuid.New()
	sessionB := uuid.New()

	client1a := newMockClient("client-1a", sessionA)
	client1b := newMockClient("client-1b", sessionA)
	client2 := newMockClient("client-2", sessionB)

	hub.Register(client1a)
	hub.Register(client1b)
	hub.Register(client2)

	evt := TransactionCreated(map[string]interface{}{"id": "t9"})
	hub.Broadcast(sessionA, evt)

	// Give goroutines time to process
	time.Sleep(10 * time.Millisecond)

	assert.Len(t, client1a.GetMessages(), 1, "client1a should receive 1 message")
	assert.Len(t, client1b.GetMessages(), 1, "client1b should receive 1 message")
	assert.Len(t, client2.GetMessages(), 0, "client2 should not receive message from another session")
}

func TestHub_Broadcast_MultipleFanOut(t *testing.T) {
	hub := NewHub()
	sessionID := uuid.New()

	clients := make([]*mockClient, 5)
	for i := 0; i < 5; i++ {
		clients[i] = newMockClient(fmt.Sprintf("client-%d", i), sessionID)
		hub.Register(clients[i])
	}

	hub.Broadcast(sessionID, BudgetUpdated(map[string]interface{}{"category": "Food & Dining"}))

	time.Sleep(10 * time.Millisecond)

	for i, c := range clients {
		assert.Len(t, c.GetMessages(), 1, "client %d should receive message", i)
	}
}

func TestHub_CloseSession(t *testing.T) {
	hub := NewHub()
	sessionID := uuid.New()
	other := uuid.New()

	client1 := newMockClient("client-1", sessionID)
	client2 := newMockClient("client-2", sessionID)
	survivor := newMockClient("client-3", other)
	hub.Register(client1)
	hub.Register(client2)
	hub.Register(survivor)

	hub.CloseSession(sessionID)

	assert.True(t, client1.IsClosed())
	assert.True(t, client2.IsClosed())
	assert.False(t, survivor.IsClosed())
	assert.Equal(t, 0, hub.ClientCount(sessionID))
	assert.Equal(t, 1, hub.ClientCount(other))

	require.NotPanics(t, func() {
		hub.CloseSession(uuid.New())
	})
}

func TestHub_ConcurrentAccess(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	clientCount := 50

	sessions := make([]uuid.UUID, 5)
	for i := range sessions {
		sessions[i] = uuid.New()
	}

	clients := make([]*mockClient, clientCount)
	for i := 0; i < clientCount; i++ {
		clients[i] = newMockClient(fmt.Sprintf("client-%d", i), sessions[i%5])
	}

	for i := 0; i < clientCount; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			hub.Register(clients[idx])
		}(i)
	}

	wg.Wait()

	total := 0
	for _, s := range sessions {
		total += hub.ClientCount(s)
	}
	assert.Equal(t, clientCount, total)

	// Concurrently broadcast and unregister
	for i := 0; i < clientCount; i++ {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			hub.Broadcast(sessions[idx%5], TransactionCreated(map[string]interface{}{"index": idx}))
		}(i)
		go func(idx int) {
			defer wg.Done()
			hub.Unregister(clients[idx])
		}(i)
	}

	wg.Wait()

	for _, s := range sessions {
		assert.Equal(t, 0, hub.ClientCount(s))
	}
}

func TestHub_UnregisterNonexistent(t *testing.T) {
	hub := NewHub()

	client := newMockClient("client-1", uuid.New())

	require.NotPanics(t, func() {
		hub.Unregister(client)
	})
}

func TestHub_BroadcastToEmptySession(t *testing.T) {
	hub := NewHub()

	require.NotPanics(t, func() {
		hub.Broadcast(uuid.New(), ChatReplied(map[string]interface{}{"text": "hi"}))
	})
}
