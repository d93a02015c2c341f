// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/wealthflow/backend/internal/domain/entity"
)

// StateRepository loads and saves the full state bundle as a single blob.
type StateRepository interface {
	// Load returns the persisted bundle. It returns domainerror.ErrStateNotFound
	// when nothing was saved yet and an error wrapping domainerror.ErrCorruptState
	// when the blob cannot be decoded.
	Load(ctx context.Context) (*entity.StateBundle, error)

	// Save overwrites the persisted bundle.
	Save(ctx context.Context, bundle *entity.StateBundle) error
}
