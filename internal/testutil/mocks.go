package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/dafibh/fundvision/fundvision-backend/internal/websocket"
	"github.com/google/uuid"
)

// ErrGeneratorFailed is the error returned by a failing MockGenerator
var ErrGeneratorFailed = errors.New("generator failed")

// GenerateCall records the arguments of one Generate call
type GenerateCall struct {
	SystemContext string
	History       []domain.ChatMessage
	Query         string
}

// MockGenerator is a mock implementation of advisor.Generator
type MockGenerator struct {
	Reply      string
	Err        error
	GenerateFn func(ctx context.Context, systemContext string, history []domain.ChatMessage, query string) (string, error)

	mu    sync.Mutex
	calls []GenerateCall
}

// NewMockGenerator creates a MockGenerator that always answers reply
func NewMockGenerator(reply string) *MockGenerator {
	return &MockGenerator{Reply: reply}
}

// NewFailingGenerator creates a MockGenerator that always fails
func NewFailingGenerator() *MockGenerator {
	return &MockGenerator{Err: ErrGeneratorFailed}
}

// Generate records the call and returns the configured result
func (m *MockGenerator) Generate(ctx context.Context, systemContext string, history []domain.ChatMessage, query string) (string, error) {
	m.mu.Lock()
	copied := make([]domain.ChatMessage, len(history))
	copy(copied, history)
	m.calls = append(m.calls, GenerateCall{SystemContext: systemContext, History: copied, Query: query})
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, systemContext, history, query)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}

// Calls returns every recorded call
func (m *MockGenerator) Calls() []GenerateCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([]GenerateCall, len(m.calls))
	copy(copied, m.calls)
	return copied
}

// CallCount returns how many times Generate was called
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// PublishedEvent is one event captured by MockPublisher
type PublishedEvent struct {
	SessionID uuid.UUID
	Event     websocket.Event
}

// MockPublisher is a mock implementation of websocket.EventPublisher that records events
type MockPublisher struct {
	mu     sync.Mutex
	events []PublishedEvent
}

// NewMockPublisher creates a new MockPublisher
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

// Publish records the event
func (m *MockPublisher) Publish(sessionID uuid.UUID, event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, PublishedEvent{SessionID: sessionID, Event: event})
}

// Events returns every recorded event
func (m *MockPublisher) Events() []PublishedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([]PublishedEvent, len(m.events))
	copy(copied, m.events)
	return copied
}

// Types returns the type of every recorded event, in order
func (m *MockPublisher) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.events))
	for i, e := range m.events {
		types[i] = e.Event.Type
	}
	return types
}
