// Package state owns the live ledger bundle and is the single place that
// persists it after a mutation.
package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/wealthflow/backend/internal/application/adapter"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/domain/ledger"
)

// MutateFunc computes the next bundle from a snapshot of the current one.
type MutateFunc func(current *entity.StateBundle) (*entity.StateBundle, error)

// Store holds the committed bundle behind a mutex.
type Store struct {
	mu        sync.Mutex
	repo      adapter.StateRepository
	engine    *ledger.Engine
	publisher adapter.EventPublisher
	now       func() time.Time
	bundle    *entity.StateBundle
}

// NewStore creates a new Store. publisher may be nil.
func NewStore(repo adapter.StateRepository, engine *ledger.Engine, publisher adapter.EventPublisher) *Store {
	return &Store{
		repo:      repo,
		engine:    engine,
		publisher: publisher,
		now:       time.Now,
	}
}

// Engine returns the ledger engine used for mutations.
func (s *Store) Engine() *ledger.Engine {
	return s.engine
}

// Load hydrates the store. A missing or unreadable blob is replaced by the
// seed bundle, which is persisted straight away.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked(ctx)
}

func (s *Store) loadLocked(ctx context.Context) error {
	bundle, err := s.repo.Load(ctx)
	switch {
	case err == nil:
		s.bundle = normalize(bundle)
		slog.Info("State loaded", "counts", s.bundle.Counts())
		return nil
	case errors.Is(err, domainerror.ErrStateNotFound), errors.Is(err, domainerror.ErrCorruptState):
		slog.Warn("Falling back to seed state", "reason", err.Error())
	default:
		return domainerror.NewStateError(domainerror.ErrCodeStateLoadFailed, "failed to load state", err)
	}

	seed := entity.SeedBundle()
	if err := s.repo.Save(ctx, seed); err != nil {
		return domainerror.NewStateError(domainerror.ErrCodeStateSaveFailed, "failed to persist seed state", err)
	}
	s.bundle = seed
	return nil
}

// Snapshot returns a deep copy of the committed bundle.
func (s *Store) Snapshot(ctx context.Context) (*entity.StateBundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.bundle.Clone(), nil
}

// Mutate applies fn to a snapshot, persists the result and only then makes it
// the committed bundle. If fn or the save fails, committed state is unchanged.
func (s *Store) Mutate(ctx context.Context, operation string, fn MutateFunc) (*entity.StateBundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	next, err := fn(s.bundle.Clone())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, next); err != nil {
		slog.Error("Failed to persist state", "operation", operation, "error", err)
		return nil, domainerror.NewStateError(domainerror.ErrCodeStateSaveFailed, "failed to save state", err)
	}

	s.bundle = next
	slog.Debug("State committed", "operation", operation, "counts", next.Counts())
	s.publish(ctx, operation, next)

	return next.Clone(), nil
}

// Reload re-reads the bundle from the repository. A missing or corrupt blob
// keeps the committed state, since it usually means a writer is mid-flight.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bundle, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, domainerror.ErrStateNotFound) || errors.Is(err, domainerror.ErrCorruptState) {
			slog.Warn("Ignoring unreadable state on reload", "reason", err.Error())
			return nil
		}
		return fmt.Errorf("failed to reload state: %w", err)
	}

	s.bundle = normalize(bundle)
	slog.Info("State reloaded", "counts", s.bundle.Counts())
	s.publish(ctx, "reload", s.bundle)

	return nil
}

func (s *Store) ensureLoaded(ctx context.Context) error {
	if s.bundle != nil {
		return nil
	}
	return s.loadLocked(ctx)
}

func (s *Store) publish(ctx context.Context, operation string, bundle *entity.StateBundle) {
	if s.publisher == nil {
		return
	}

	event := adapter.StateChangedEvent{
		Type:      adapter.EventTypeStateChanged,
		Operation: operation,
		At:        s.now(),
		Counts:    bundle.Counts(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish state change", "operation", operation, "error", err)
	}
}

func normalize(b *entity.StateBundle) *entity.StateBundle {
	if b.Accounts == nil {
		b.Accounts = []entity.Account{}
	}
	if b.Transactions == nil {
		b.Transactions = []entity.Transaction{}
	}
	if b.Categories == nil {
		b.Categories = entity.DefaultCategories()
	}
	if b.Savings == nil {
		b.Savings = []entity.SavingGoal{}
	}
	if b.Debts == nil {
		b.Debts = []entity.Debt{}
	}
	return b
}
