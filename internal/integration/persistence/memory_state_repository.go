// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"sync"

	"github.com/wealthflow/backend/internal/application/adapter"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
)

// MemoryStateRepository keeps the encoded blob in process memory.
// Nothing survives a restart.
type MemoryStateRepository struct {
	mu   sync.RWMutex
	data []byte
}

var _ adapter.StateRepository = (*MemoryStateRepository)(nil)

// NewMemoryStateRepository creates a new in-memory state repository.
func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{}
}

// Load decodes the stored blob.
func (r *MemoryStateRepository) Load(ctx context.Context) (*entity.StateBundle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.data == nil {
		return nil, domainerror.ErrStateNotFound
	}
	return DecodeState(r.data)
}

// Save encodes and stores the bundle.
func (r *MemoryStateRepository) Save(ctx context.Context, bundle *entity.StateBundle) error {
	data, err := EncodeState(bundle)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.data = data
	r.mu.Unlock()
	return nil
}

// SetRaw replaces the stored blob with arbitrary bytes.
func (r *MemoryStateRepository) SetRaw(data []byte) {
	r.mu.Lock()
	r.data = data
	r.mu.Unlock()
}
