package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to an entity
type EventType string

const (
	EventTypeCreated EventType = "created"
	EventTypeUpdated EventType = "updated"
	EventTypeRead    EventType = "read"
	EventTypeReplied EventType = "replied"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeTransaction  EntityType = "transaction"
	EntityTypeBudget       EntityType = "budget"
	EntityTypeNotification EntityType = "notification"
	EntityTypeChat         EntityType = "chat"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "transaction.created"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "transaction"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// TransactionCreated creates a transaction.created event
func TransactionCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeTransaction, payload)
}

// BudgetUpdated creates a budget.updated event
func BudgetUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeBudget, payload)
}

// NotificationRead creates a notification.read event
func NotificationRead(payload interface{}) Event {
	return NewEvent(EventTypeRead, EntityTypeNotification, payload)
}

// ChatReplied creates a chat.replied event
func ChatReplied(payload interface{}) Event {
	return NewEvent(EventTypeReplied, EntityTypeChat, payload)
}
