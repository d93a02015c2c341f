package state

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/application/adapter"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/domain/ledger"
)

type memoryRepository struct {
	bundle  *entity.StateBundle
	loadErr error
	saveErr error
	saves   int
}

func (r *memoryRepository) Load(ctx context.Context) (*entity.StateBundle, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.bundle == nil {
		return nil, domainerror.ErrStateNotFound
	}
	return r.bundle.Clone(), nil
}

func (r *memoryRepository) Save(ctx context.Context, bundle *entity.StateBundle) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.bundle = bundle.Clone()
	return nil
}

type recordingPublisher struct {
	events []adapter.StateChangedEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event adapter.StateChangedEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func TestStore_Load(t *testing.T) {
	tests := []struct {
		name           string
		repo           *memoryRepository
		wantErr        bool
		wantSeed       bool
		wantSaves      int
		wantCategories int
	}{
		{
			name:           "first run seeds and persists",
			repo:           &memoryRepository{},
			wantSeed:       true,
			wantSaves:      1,
			wantCategories: 7,
		},
		{
			name:           "corrupt blob falls back to seed",
			repo:           &memoryRepository{loadErr: fmt.Errorf("decode: %w", domainerror.ErrCorruptState)},
			wantSeed:       true,
			wantSaves:      1,
			wantCategories: 7,
		},
		{
			name:    "backend failure is returned",
			repo:    &memoryRepository{loadErr: errors.New("connection refused")},
			wantErr: true,
		},
		{
			name:           "missing categories use defaults",
			repo:           &memoryRepository{bundle: &entity.StateBundle{Accounts: []entity.Account{{ID: "x", Name: "Only"}}}},
			wantCategories: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(tt.repo, ledger.NewEngine(), nil)

			err := store.Load(context.Background())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			snap, _ := store.Snapshot(context.Background())
			if tt.wantSeed && snap.Accounts[0].ID != "a1" {
				t.Errorf("expected seed account a1, got %s", snap.Accounts[0].ID)
			}
			if tt.repo.saves != tt.wantSaves {
				t.Errorf("expected %d saves, got %d", tt.wantSaves, tt.repo.saves)
			}
			if len(snap.Categories) != tt.wantCategories {
				t.Errorf("expected %d categories, got %d", tt.wantCategories, len(snap.Categories))
			}
		})
	}
}

func TestStore_Mutate_CommitsAfterSave(t *testing.T) {
	repo := &memoryRepository{}
	publisher := &recordingPublisher{}
	store := NewStore(repo, ledger.NewEngine(), publisher)
	ctx := context.Background()

	tx := entity.Transaction{ID: "t1", AccountID: "a1", Amount: decimal.NewFromInt(5000), Type: entity.TransactionTypeExpense}
	_, err := store.Mutate(ctx, "create_transaction", func(b *entity.StateBundle) (*entity.StateBundle, error) {
		return store.Engine().ApplyTransaction(b, tx), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, _ := store.Snapshot(ctx)
	if !snap.Accounts[0].Balance.Equal(decimal.NewFromInt(145000)) {
		t.Errorf("expected 145000, got %s", snap.Accounts[0].Balance)
	}
	if !repo.bundle.Accounts[0].Balance.Equal(decimal.NewFromInt(145000)) {
		t.Errorf("expected persisted 145000, got %s", repo.bundle.Accounts[0].Balance)
	}
	if len(publisher.events) != 1 || publisher.events[0].Operation != "create_transaction" {
		t.Errorf("expected one create_transaction event, got %+v", publisher.events)
	}
	if publisher.events[0].Counts.Transactions != 1 {
		t.Errorf("expected event to count 1 transaction, got %d", publisher.events[0].Counts.Transactions)
	}
}

func TestStore_Mutate_FailedSaveKeepsCommittedState(t *testing.T) {
	repo := &memoryRepository{}
	store := NewStore(repo, ledger.NewEngine(), nil)
	ctx := context.Background()
	if err := store.Load(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.saveErr = errors.New("disk full")
	_, err := store.Mutate(ctx, "delete_account", func(b *entity.StateBundle) (*entity.StateBundle, error) {
		return store.Engine().DeleteAccount(b, "a1"), nil
	})

	var stateErr *domainerror.StateError
	if !errors.As(err, &stateErr) || stateErr.Code != domainerror.ErrCodeStateSaveFailed {
		t.Fatalf("expected StateError %s, got %v", domainerror.ErrCodeStateSaveFailed, err)
	}

	snap, _ := store.Snapshot(ctx)
	if len(snap.Accounts) != 3 {
		t.Errorf("expected 3 accounts after failed save, got %d", len(snap.Accounts))
	}
}

func TestStore_Mutate_FuncErrorSkipsSave(t *testing.T) {
	repo := &memoryRepository{}
	store := NewStore(repo, ledger.NewEngine(), nil)
	ctx := context.Background()
	_ = store.Load(ctx)
	saves := repo.saves

	wantErr := errors.New("rejected")
	_, err := store.Mutate(ctx, "noop", func(b *entity.StateBundle) (*entity.StateBundle, error) {
		return nil, wantErr
	})

	if !errors.Is(err, wantErr) {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
	if repo.saves != saves {
		t.Errorf("expected no save, got %d", repo.saves-saves)
	}
}

func TestStore_PublishErrorDoesNotFailMutation(t *testing.T) {
	store := NewStore(&memoryRepository{}, ledger.NewEngine(), &recordingPublisher{err: errors.New("broker down")})

	_, err := store.Mutate(context.Background(), "add_category", func(b *entity.StateBundle) (*entity.StateBundle, error) {
		return store.Engine().AddCategory(b, entity.Category{ID: "c", Name: "Pets"}), nil
	})

	if err != nil {
		t.Errorf("expected publish failure to be ignored, got %v", err)
	}
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	store := NewStore(&memoryRepository{}, ledger.NewEngine(), nil)
	ctx := context.Background()

	snap, _ := store.Snapshot(ctx)
	snap.Accounts[0].Balance = decimal.Zero

	again, _ := store.Snapshot(ctx)
	if again.Accounts[0].Balance.IsZero() {
		t.Error("expected snapshot edits not to leak into the store")
	}
}

func TestStore_Reload(t *testing.T) {
	repo := &memoryRepository{}
	publisher := &recordingPublisher{}
	store := NewStore(repo, ledger.NewEngine(), publisher)
	ctx := context.Background()
	_ = store.Load(ctx)

	external := entity.SeedBundle()
	external.Accounts = external.Accounts[:1]
	repo.bundle = external

	if err := store.Reload(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap, _ := store.Snapshot(ctx)
	if len(snap.Accounts) != 1 {
		t.Errorf("expected 1 account after reload, got %d", len(snap.Accounts))
	}
	if len(publisher.events) != 1 || publisher.events[0].Operation != "reload" {
		t.Errorf("expected reload event, got %+v", publisher.events)
	}

	repo.loadErr = fmt.Errorf("half written: %w", domainerror.ErrCorruptState)
	if err := store.Reload(ctx); err != nil {
		t.Errorf("expected corrupt reload to be ignored, got %v", err)
	}
	snap, _ = store.Snapshot(ctx)
	if len(snap.Accounts) != 1 {
		t.Errorf("expected committed state kept, got %d accounts", len(snap.Accounts))
	}
}
