package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/wealthflow/backend/internal/domain/error"
)

func TestRedisStateRepository(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	repo := NewRedisStateRepository(client, DefaultStateKey)

	if _, err := repo.Load(ctx); !errors.Is(err, domainerror.ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound, got %v", err)
	}

	if err := repo.Save(ctx, sampleBundle()); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if !server.Exists(DefaultStateKey) {
		t.Fatalf("expected key %s to exist", DefaultStateKey)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if len(loaded.Debts) != 1 || loaded.Debts[0].ID != "d1" {
		t.Errorf("expected debt d1, got %+v", loaded.Debts)
	}

	server.Set(DefaultStateKey, "garbage")
	if _, err := repo.Load(ctx); !errors.Is(err, domainerror.ErrCorruptState) {
		t.Errorf("expected ErrCorruptState, got %v", err)
	}
}

func TestMemoryStateRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryStateRepository()

	if _, err := repo.Load(ctx); !errors.Is(err, domainerror.ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound, got %v", err)
	}
	if err := repo.Save(ctx, sampleBundle()); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if _, err := repo.Load(ctx); err != nil {
		t.Errorf("unexpected load error: %v", err)
	}

	repo.SetRaw([]byte("]"))
	if _, err := repo.Load(ctx); !errors.Is(err, domainerror.ErrCorruptState) {
		t.Errorf("expected ErrCorruptState, got %v", err)
	}
}
