// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/integration/persistence/model"
)

// DefaultStateKey is the key the state blob is stored under.
const DefaultStateKey = "wealthflow_db_v2"

// EncodeState serializes a bundle into the persisted JSON layout.
func EncodeState(bundle *entity.StateBundle) ([]byte, error) {
	data, err := json.Marshal(model.StateFromEntity(bundle))
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

// DecodeState parses a persisted blob. Any failure wraps domainerror.ErrCorruptState.
func DecodeState(data []byte) (*entity.StateBundle, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty blob", domainerror.ErrCorruptState)
	}

	var doc model.StateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrCorruptState, err)
	}

	bundle, err := doc.ToEntity()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrCorruptState, err)
	}
	return bundle, nil
}
