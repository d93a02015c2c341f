package adapter

import (
	"context"
	"time"

	"github.com/wealthflow/backend/internal/domain/entity"
)

// EventTypeStateChanged is emitted after every committed mutation.
const EventTypeStateChanged = "ledger.state_changed"

// StateChangedEvent tells listeners the bundle changed and they should re-read it.
// Collection sizes are flattened into the event.
type StateChangedEvent struct {
	Type      string    `json:"type"`
	Operation string    `json:"operation"`
	At        time.Time `json:"at"`
	entity.Counts
}

// EventPublisher delivers state change notifications.
type EventPublisher interface {
	Publish(ctx context.Context, event StateChangedEvent) error
}
