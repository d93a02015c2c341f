// Package events delivers ledger change notifications to external listeners.
package events

import (
	"context"
	"errors"

	"github.com/wealthflow/backend/internal/application/adapter"
)

// FanOut publishes every event to all wrapped publishers.
type FanOut struct {
	publishers []adapter.EventPublisher
}

// NewFanOut creates a publisher over the non-nil publishers given.
func NewFanOut(publishers ...adapter.EventPublisher) *FanOut {
	fanOut := &FanOut{}
	for _, p := range publishers {
		if p != nil {
			fanOut.publishers = append(fanOut.publishers, p)
		}
	}
	return fanOut
}

// Publish delivers to every publisher and joins their errors.
func (f *FanOut) Publish(ctx context.Context, event adapter.StateChangedEvent) error {
	var errs []error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
