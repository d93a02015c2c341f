package dependency

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"

	"github.com/wealthflow/backend/config"
	"github.com/wealthflow/backend/internal/application/adapter"
	"github.com/wealthflow/backend/internal/infra/db"
	"github.com/wealthflow/backend/internal/integration/persistence"
	"github.com/wealthflow/backend/internal/integration/persistence/model"
)

// Storage is the opened backend the ledger blob is read from and written to.
type Storage struct {
	Backend    string
	Repository adapter.StateRepository
	// HealthCheck reports whether the backend is reachable.
	HealthCheck func() bool
	// WatchPath is set for the file backend only.
	WatchPath string
	closers   []func() error
}

// OpenStorage opens the repository selected by cfg.Storage.Backend.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendFile:
		repo := persistence.NewFileStateRepository(cfg.Storage.FilePath)
		dir := filepath.Dir(repo.Path())
		return &Storage{
			Backend:    cfg.Storage.Backend,
			Repository: repo,
			HealthCheck: func() bool {
				info, err := os.Stat(dir)
				return err == nil && info.IsDir()
			},
			WatchPath: repo.Path(),
		}, nil

	case config.StorageBackendSQLite, config.StorageBackendPostgres:
		database, err := db.NewConnection(cfg.Storage.Backend, &cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(&model.StateBlobModel{}); err != nil {
			database.Close()
			return nil, err
		}
		return &Storage{
			Backend:     cfg.Storage.Backend,
			Repository:  persistence.NewSQLStateRepository(database.DB(), cfg.Storage.Key),
			HealthCheck: database.HealthCheck,
			closers:     []func() error{database.Close},
		}, nil

	case config.StorageBackendRedis:
		client, err := newRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Backend:    cfg.Storage.Backend,
			Repository: persistence.NewRedisStateRepository(client, cfg.Storage.Key),
			HealthCheck: func() bool {
				return client.Ping(context.Background()).Err() == nil
			},
			closers: []func() error{client.Close},
		}, nil
	}

	return nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
}

// NewMemoryStorage is used by tests and the e2e environment.
func NewMemoryStorage() *Storage {
	return &Storage{
		Backend:     "memory",
		Repository:  persistence.NewMemoryStateRepository(),
		HealthCheck: func() bool { return true },
	}
}

// Close releases backend connections.
func (s *Storage) Close() error {
	var errs []error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func newRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}
