// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/wealthflow/backend/internal/application/adapter"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
)

// redisStateRepository implements adapter.StateRepository with a single Redis key.
type redisStateRepository struct {
	client *redis.Client
	key    string
}

// NewRedisStateRepository creates a new Redis-backed state repository instance.
func NewRedisStateRepository(client *redis.Client, key string) adapter.StateRepository {
	return &redisStateRepository{
		client: client,
		key:    key,
	}
}

// Load reads the state blob key.
func (r *redisStateRepository) Load(ctx context.Context) (*entity.StateBundle, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to read state: %w", err)
	}
	return DecodeState(data)
}

// Save overwrites the state blob key without expiry.
func (r *redisStateRepository) Save(ctx context.Context, bundle *entity.StateBundle) error {
	data, err := EncodeState(bundle)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}
