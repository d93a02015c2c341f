package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/wealthflow/backend/config"
	"github.com/wealthflow/backend/internal/application/adapter"
	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/domain/ledger"
	"github.com/wealthflow/backend/internal/infra/dependency"
)

// App carries what every command needs. Storage is opened on first use so
// commands like hash-passcode never touch it.
type App struct {
	Config *config.Config
	Stdout io.Writer
	Stderr io.Writer

	// Confirm asks a yes/no question. Defaults to a huh prompt on terminals.
	Confirm func(question string) (bool, error)

	// Transcriber replaces the Gemini service when set.
	Transcriber adapter.TranscriptionService

	storage  *dependency.Storage
	store    *state.Store
	useCases *dependency.UseCases
}

// NewApp creates an App writing to the process streams.
func NewApp(cfg *config.Config) *App {
	return &App{
		Config:  cfg,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Confirm: promptYesNo,
	}
}

// WithStorage makes the App use an already opened storage.
func (a *App) WithStorage(storage *dependency.Storage) *App {
	a.storage = storage
	return a
}

// UseCases returns the ledger operations, opening storage if needed.
func (a *App) UseCases(ctx context.Context) (*dependency.UseCases, error) {
	if a.useCases != nil {
		return a.useCases, nil
	}

	if a.storage == nil {
		storage, err := dependency.OpenStorage(ctx, a.Config)
		if err != nil {
			return nil, err
		}
		a.storage = storage
	}

	store := state.NewStore(a.storage.Repository, ledger.NewEngine(), nil)
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	slog.Debug("Ledger loaded", "backend", a.storage.Backend)

	a.store = store
	a.useCases = dependency.NewUseCases(a.Config, store, a.Transcriber, nil, nil)
	return a.useCases, nil
}

// Close releases the storage if it was opened.
func (a *App) Close() error {
	if a.storage == nil {
		return nil
	}
	return a.storage.Close()
}

func (a *App) confirm(question string, skip bool) (bool, error) {
	if skip {
		return true, nil
	}
	return a.Confirm(question)
}
