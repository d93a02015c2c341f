// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/wealthflow/backend/config"
	"github.com/wealthflow/backend/internal/application/adapter"
	"github.com/wealthflow/backend/internal/application/state"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/domain/ledger"
	"github.com/wealthflow/backend/internal/infra/server/router"
	"github.com/wealthflow/backend/internal/infra/watcher"
	"github.com/wealthflow/backend/internal/integration/adapters"
	"github.com/wealthflow/backend/internal/integration/entrypoint/controller"
	"github.com/wealthflow/backend/internal/integration/entrypoint/middleware"
	"github.com/wealthflow/backend/internal/integration/events"
)

// Injector holds all application dependencies.
type Injector struct {
	Config             *config.Config
	Storage            *Storage
	Store              *state.Store
	Hub                *events.Hub
	UseCases           *UseCases
	Router             *router.Router
	SessionRateLimiter *middleware.RateLimiter
	VoiceRateLimiter   *middleware.RateLimiter
	// Watcher is nil unless the file backend is watched.
	Watcher *watcher.FileWatcher
	amqp    *events.AMQPPublisher
}

// Option customises the injector, mainly for tests.
type Option func(*options)

type options struct {
	transcriber adapter.TranscriptionService
	now         func() time.Time
}

// WithTranscriber replaces the Gemini transcription service.
func WithTranscriber(transcriber adapter.TranscriptionService) Option {
	return func(o *options) {
		o.transcriber = transcriber
	}
}

// WithClock replaces time.Now for transfers and period analytics.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// NewInjector opens the configured storage and wires everything on top of it.
func NewInjector(ctx context.Context, cfg *config.Config, opts ...Option) (*Injector, error) {
	storage, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	injector, err := NewInjectorWithStorage(ctx, cfg, storage, opts...)
	if err != nil {
		storage.Close()
		return nil, err
	}
	return injector, nil
}

// NewInjectorWithStorage creates a new dependency injector with all dependencies wired.
func NewInjectorWithStorage(ctx context.Context, cfg *config.Config, storage *Storage, opts ...Option) (*Injector, error) {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	// Create event publishers
	hub := events.NewHub()
	publishers := []adapter.EventPublisher{hub}

	var amqpPublisher *events.AMQPPublisher
	if cfg.Events.AMQPURL != "" {
		publisher, err := events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.AMQPExchange)
		if err != nil {
			slog.Warn("AMQP publisher unavailable, continuing without it", "error", err)
		} else {
			amqpPublisher = publisher
			publishers = append(publishers, publisher)
		}
	}

	// Create the state holder
	store := state.NewStore(storage.Repository, ledger.NewEngine(ledger.WithClock(o.now)), events.NewFanOut(publishers...))
	if err := store.Load(ctx); err != nil {
		if amqpPublisher != nil {
			amqpPublisher.Close()
		}
		return nil, err
	}

	// Create session services
	var tokenService adapter.TokenService
	var authMiddleware *middleware.AuthMiddleware
	if cfg.Lock.Enabled() {
		tokenService = adapters.NewTokenService(cfg.Lock.TokenSecret, cfg.Lock.SessionDuration)
		authMiddleware = middleware.NewAuthMiddleware(tokenService)
	}

	useCases := NewUseCases(cfg, store, o.transcriber, tokenService, o.now)

	// Create controllers
	controllers := router.Controllers{
		Health:  controller.NewHealthController(storage.Backend, storage.HealthCheck),
		Session: controller.NewSessionController(useCases.Unlock),
		State:   controller.NewStateController(store),
		Wallet: controller.NewWalletController(
			useCases.GetOverview,
			useCases.ListItems,
			useCases.CreateItem,
			useCases.DeleteAccount,
			useCases.PayCard,
		),
		Transaction: controller.NewTransactionController(
			useCases.ListTransactions,
			useCases.CreateTransaction,
		),
		Transfer: controller.NewTransferController(useCases.TransferFunds),
		Category: controller.NewCategoryController(
			useCases.ListCategories,
			useCases.CreateCategory,
			useCases.UpdateCategory,
			useCases.DeleteCategory,
		),
		Dashboard:   controller.NewDashboardController(useCases.CategoryBreakdown),
		Voice:       controller.NewVoiceController(useCases.ProcessVoice),
		LiveUpdates: hub,
	}

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var sessionRateLimiter, voiceRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		sessionRateLimiter = middleware.NewRateLimiterWithConfig(string(domainerror.ErrCodeRateLimited), 1000, time.Minute)
		voiceRateLimiter = middleware.NewRateLimiterWithConfig(string(domainerror.ErrCodeTranscriptionRateLimited), 1000, time.Minute)
	} else {
		sessionRateLimiter = middleware.NewRateLimiterWithConfig(
			string(domainerror.ErrCodeRateLimited),
			cfg.RateLimit.SessionMax,
			cfg.RateLimit.SessionWindow,
		)
		voiceRateLimiter = middleware.NewRateLimiterWithConfig(
			string(domainerror.ErrCodeTranscriptionRateLimited),
			cfg.RateLimit.VoiceMax,
			cfg.RateLimit.VoiceWindow,
		)
	}

	// Create router
	r := router.NewRouter(controllers, sessionRateLimiter, voiceRateLimiter, authMiddleware)

	var fileWatcher *watcher.FileWatcher
	if cfg.Storage.Watch && storage.WatchPath != "" {
		fileWatcher = watcher.New(storage.WatchPath, store)
	}

	return &Injector{
		Config:             cfg,
		Storage:            storage,
		Store:              store,
		Hub:                hub,
		UseCases:           useCases,
		Router:             r,
		SessionRateLimiter: sessionRateLimiter,
		VoiceRateLimiter:   voiceRateLimiter,
		Watcher:            fileWatcher,
		amqp:               amqpPublisher,
	}, nil
}

// Close releases the event publisher and storage connections.
func (i *Injector) Close() error {
	var errs []error
	if i.amqp != nil {
		if err := i.amqp.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := i.Storage.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
