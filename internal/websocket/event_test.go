package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]interface{}{
		"id":          "t9",
		"description": "Chai",
		"amount":      "40.00",
	}

	before := time.Now()
	evt := NewEvent(EventTypeCreated, EntityTypeTransaction, payload)
	after := time.Now()

	assert.Equal(t, "transaction.created", evt.Type)
	assert.Equal(t, EntityTypeTransaction, evt.Entity)
	assert.Equal(t, payload, evt.Payload)
	assert.True(t, !evt.Timestamp.Before(before) && !evt.Timestamp.After(after))
}

func TestEvent_ToJSON(t *testing.T) {
	evt := NewEvent(EventTypeUpdated, EntityTypeBudget, map[string]interface{}{"category": "Shopping"})

	data, err := evt.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "budget.updated", decoded["type"])
	assert.Equal(t, "budget", decoded["entity"])
	assert.NotNil(t, decoded["payload"])
	assert.NotNil(t, decoded["timestamp"])
}

func TestEvent_Helpers(t *testing.T) {
	payload := map[string]interface{}{"id": "x"}

	tests := []struct {
		name   string
		evt    Event
		typ    string
		entity EntityType
	}{
		{"TransactionCreated", TransactionCreated(payload), "transaction.created", EntityTypeTransaction},
		{"BudgetUpdated", BudgetUpdated(payload), "budget.updated", EntityTypeBudget},
		{"NotificationRead", NotificationRead(payload), "notification.read", EntityTypeNotification},
		{"ChatReplied", ChatReplied(payload), "chat.replied", EntityTypeChat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.evt.Type)
			assert.Equal(t, tt.entity, tt.evt.Entity)
			assert.Equal(t, payload, tt.evt.Payload)
		})
	}
}
