package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	domainerror "github.com/wealthflow/backend/internal/domain/error"
)

func TestFileStateRepository(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	repo := NewFileStateRepository(path)

	if _, err := repo.Load(ctx); !errors.Is(err, domainerror.ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound, got %v", err)
	}

	if err := repo.Save(ctx, sampleBundle()); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if len(loaded.Transactions) != 2 || loaded.Transactions[0].ID != "t2" {
		t.Errorf("expected two transactions with t2 first, got %+v", loaded.Transactions)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the state file to remain, got %d entries", len(entries))
	}
}

func TestFileStateRepository_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := NewFileStateRepository(path).Load(context.Background())
	if !errors.Is(err, domainerror.ErrCorruptState) {
		t.Errorf("expected ErrCorruptState, got %v", err)
	}
}
