// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wealthflow/backend/internal/application/adapter"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/integration/persistence/model"
)

// sqlStateRepository implements adapter.StateRepository on a single-row table.
type sqlStateRepository struct {
	db  *gorm.DB
	key string
}

// NewSQLStateRepository creates a new SQL-backed state repository instance.
func NewSQLStateRepository(db *gorm.DB, key string) adapter.StateRepository {
	return &sqlStateRepository{
		db:  db,
		key: key,
	}
}

// Load retrieves the state blob row and decodes it.
func (r *sqlStateRepository) Load(ctx context.Context) (*entity.StateBundle, error) {
	var blob model.StateBlobModel
	result := r.db.WithContext(ctx).Where("key = ?", r.key).First(&blob)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrStateNotFound
		}
		return nil, result.Error
	}
	return DecodeState([]byte(blob.Data))
}

// Save upserts the state blob row.
func (r *sqlStateRepository) Save(ctx context.Context, bundle *entity.StateBundle) error {
	data, err := EncodeState(bundle)
	if err != nil {
		return err
	}

	blob := &model.StateBlobModel{
		Key:       r.key,
		Data:      string(data),
		UpdatedAt: time.Now().UTC(),
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(blob)
	if result.Error != nil {
		return fmt.Errorf("failed to save state: %w", result.Error)
	}
	return nil
}
