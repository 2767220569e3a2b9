package backend

import (
	"context"
	"path/filepath"
	"testing"

	"focusfinance/internal/config"
)

func TestCreateMemoryBackend(t *testing.T) {
	factory := NewFactory(nil)

	result, err := factory.CreateBackend(context.Background(), Config{Type: MemoryBackend})
	if err != nil {
		t.Fatalf("CreateBackend: %v", err)
	}
	defer result.Cleanup()

	ctx := context.Background()
	if err := result.Store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok, _ := result.Store.Get(ctx, "k"); !ok || v != "v" {
		t.Fatalf("Get = %q, %v", v, ok)
	}
	if result.AMQP != nil {
		t.Fatal("AMQP should be nil without a broker URL")
	}
}

func TestCreateSQLiteBackend(t *testing.T) {
	factory := NewFactory(nil)
	dbPath := filepath.Join(t.TempDir(), "test.db")

	result, err := factory.CreateBackend(context.Background(), Config{
		Type:         SQLiteBackend,
		SQLiteDBPath: dbPath,
	})
	if err != nil {
		t.Fatalf("CreateBackend: %v", err)
	}

	ctx := context.Background()
	if err := result.Store.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok, _ := result.Store.Get(ctx, "theme"); !ok || v != "dark" {
		t.Fatalf("Get = %q, %v", v, ok)
	}

	if err := result.Cleanup(); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
}

func TestCreateBackendRejectsInvalidType(t *testing.T) {
	factory := NewFactory(nil)
	if _, err := factory.CreateBackend(context.Background(), Config{Type: "redis"}); err == nil {
		t.Fatal("invalid backend type should fail")
	}
}

func TestFromAppConfig(t *testing.T) {
	appCfg := &config.Config{
		StorageBackend: "sqlite",
		SQLiteDBPath:   "/tmp/x.db",
		AMQPURL:        "amqp://localhost",
		AMQPExchange:   "focusfinance",
		AMQPQueue:      "ledger_events",
	}

	cfg, err := FromAppConfig(appCfg)
	if err != nil {
		t.Fatalf("FromAppConfig: %v", err)
	}
	if cfg.Type != SQLiteBackend || cfg.SQLiteDBPath != "/tmp/x.db" || cfg.AMQPQueue != "ledger_events" {
		t.Fatalf("config mismatch: %+v", cfg)
	}

	if _, err := FromAppConfig(nil); err == nil {
		t.Fatal("nil app config should fail")
	}

	appCfg.StorageBackend = "sheets"
	if _, err := FromAppConfig(appCfg); err == nil {
		t.Fatal("unknown backend should fail")
	}
}

func TestBackendConfigValidate(t *testing.T) {
	if err := (Config{Type: MemoryBackend}).Validate(); err != nil {
		t.Errorf("memory backend should validate: %v", err)
	}
	if err := (Config{Type: SQLiteBackend}).Validate(); err == nil {
		t.Error("sqlite backend without a path should not validate")
	}
	if err := (Config{Type: SQLiteBackend, SQLiteDBPath: "x.db"}).Validate(); err != nil {
		t.Errorf("sqlite backend with a path should validate: %v", err)
	}
}
