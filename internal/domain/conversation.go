package domain

import (
	"strings"
	"sync"
)

// ConversationState is the phase of the chat exchange
type ConversationState string

const (
	ConversationIdle          ConversationState = "idle"
	ConversationAwaitingReply ConversationState = "awaiting_reply"
)

// Conversation is the append-only turn log plus the two-phase send state.
// At most one advice request is outstanding at a time. It is safe for concurrent use.
type Conversation struct {
	mu       sync.RWMutex
	messages []ChatMessage
	state    ConversationState
}

// NewConversation returns an idle, empty conversation
func NewConversation() *Conversation {
	return &Conversation{state: ConversationIdle}
}

// Begin records the user's turn and moves to awaiting-reply. It returns the
// turns that preceded this one. Empty queries and submissions while a reply
// is pending are rejected without touching the log.
func (c *Conversation) Begin(query string) ([]ChatMessage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == ConversationAwaitingReply {
		return nil, ErrReplyPending
	}

	history := make([]ChatMessage, len(c.messages))
	copy(history, c.messages)

	c.messages = append(c.messages, ChatMessage{Role: ChatRoleUser, Text: query})
	c.state = ConversationAwaitingReply
	return history, nil
}

// Complete appends the single model turn for the pending request and returns to idle
func (c *Conversation) Complete(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != ConversationAwaitingReply {
		return ErrNoPendingRequest
	}

	c.messages = append(c.messages, ChatMessage{Role: ChatRoleModel, Text: text})
	c.state = ConversationIdle
	return nil
}

// Messages returns a copy of the turn log
func (c *Conversation) Messages() []ChatMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// State returns the current phase
func (c *Conversation) State() ConversationState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// IsAwaitingReply is the loading flag shown by the UI
func (c *Conversation) IsAwaitingReply() bool {
	return c.State() == ConversationAwaitingReply
}

// Len returns the number of turns
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}
