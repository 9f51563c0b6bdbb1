package websocket

import "github.com/google/uuid"

// EventPublisher defines the interface for publishing events to WebSocket clients
type EventPublisher interface {
	// Publish sends an event to all clients connected to the specified session
	Publish(sessionID uuid.UUID, event Event)
}

// Ensure Hub implements EventPublisher
var _ EventPublisher = (*Hub)(nil)

// Publish implements EventPublisher by broadcasting the event to the session
func (h *Hub) Publish(sessionID uuid.UUID, event Event) {
	h.Broadcast(sessionID, event)
}

// NoOpPublisher is a publisher that does nothing (for testing or when WebSocket is disabled)
type NoOpPublisher struct{}

// Publish does nothing
func (n *NoOpPublisher) Publish(sessionID uuid.UUID, event Event) {}
