package backend

import (
	"path/filepath"
	"strings"
	"testing"

	"spendlog/internal/config"
	applog "spendlog/internal/log"
	"spendlog/internal/storage"
)

func TestTypeIsValid(t *testing.T) {
	cases := []struct {
		t     Type
		valid bool
	}{
		{FileBackend, true},
		{SQLiteBackend, true},
		{Type("postgres"), false},
		{Type(""), false},
	}
	for _, tc := range cases {
		if got := tc.t.IsValid(); got != tc.valid {
			t.Errorf("IsValid(%q) = %v, want %v", tc.t, got, tc.valid)
		}
	}
}

func TestOpenFileBackend(t *testing.T) {
	cfg := &config.Config{
		DataBackend: "file",
		DataFile:    filepath.Join(t.TempDir(), "expenses.json"),
	}

	store, err := Open(cfg, applog.New(applog.Config{}))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	if _, ok := store.(*storage.FileStore); !ok {
		t.Fatalf("expected *storage.FileStore, got %T", store)
	}
}

func TestOpenSQLiteBackend(t *testing.T) {
	cfg := &config.Config{
		DataBackend:  "sqlite",
		SQLiteDBPath: filepath.Join(t.TempDir(), "spendlog.db"),
	}

	store, err := Open(cfg, applog.New(applog.Config{}))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	if _, ok := store.(*storage.SQLiteStore); !ok {
		t.Fatalf("expected *storage.SQLiteStore, got %T", store)
	}
}

func TestOpenUnsupportedBackend(t *testing.T) {
	cfg := &config.Config{DataBackend: "redis"}

	_, err := Open(cfg, applog.New(applog.Config{}))
	if err == nil {
		t.Fatal("expected error for unsupported backend")
	}
	if !strings.Contains(err.Error(), "unsupported data backend") {
		t.Fatalf("unexpected error: %v", err)
	}
}
