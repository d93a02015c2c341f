package db

import (
	"path/filepath"
	"testing"

	"github.com/wealthflow/backend/config"
	"github.com/wealthflow/backend/internal/integration/persistence/model"
)

func TestNewConnection_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		SQLitePath: filepath.Join(t.TempDir(), "wealthflow.db"),
	}

	database, err := NewConnection(config.StorageBackendSQLite, cfg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer database.Close()

	if database.Dialect() != config.StorageBackendSQLite {
		t.Errorf("expected sqlite dialect, got %s", database.Dialect())
	}
	if !database.HealthCheck() {
		t.Error("expected health check to pass")
	}
	if err := database.AutoMigrate(&model.StateBlobModel{}); err != nil {
		t.Fatalf("expected migration to succeed, got %v", err)
	}
	if !database.DB().Migrator().HasTable("state_blobs") {
		t.Error("expected state_blobs table to exist")
	}
}

func TestNewConnection_RejectsNonSQLBackend(t *testing.T) {
	for _, backend := range []string{config.StorageBackendFile, config.StorageBackendRedis, ""} {
		t.Run(backend, func(t *testing.T) {
			if _, err := NewConnection(backend, &config.DatabaseConfig{}); err == nil {
				t.Errorf("expected error for backend %q", backend)
			}
		})
	}
}

func TestClose_FailsHealthCheckAfterwards(t *testing.T) {
	database, err := NewConnection(config.StorageBackendSQLite, &config.DatabaseConfig{SQLitePath: ":memory:"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := database.Close(); err != nil {
		t.Fatalf("expected close to succeed, got %v", err)
	}
	if database.HealthCheck() {
		t.Error("expected health check to fail on a closed connection")
	}
}
