package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"spendlog/internal/core"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "data", "expenses.json"))
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := newTestFileStore(t)

	records, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty set, got %+v", records)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	want := []core.Expense{
		{ID: 1, Date: "2024-01-15", Category: "food", Description: "lunch", Amount: 10.5},
		{ID: 2, Date: "2024-02-01", Category: "transport", Description: "bus ticket", Amount: 2.25},
		{ID: 3, Date: "2024-02-03", Category: "food", Description: "groceries", Amount: 0},
	}

	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestFileStoreSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "expenses.json")
	store := NewFileStore(path)

	if err := store.Save(context.Background(), nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "[]\n" {
		t.Fatalf("empty set should serialize as [], got %q", data)
	}
}

func TestFileStoreResetIdempotent(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, []core.Expense{{ID: 1, Amount: 5}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Reset(ctx); err != nil {
		t.Fatalf("first reset: %v", err)
	}
	if err := store.Reset(ctx); err != nil {
		t.Fatalf("second reset: %v", err)
	}
	records, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load after reset: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty set after reset, got %+v", records)
	}
}

func TestFileStoreLoadMalformedFile(t *testing.T) {
	store := newTestFileStore(t)
	writeRaw(t, store.path, "not valid json")

	records, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("malformed file must load as empty, got error %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty set, got %+v", records)
	}
}

func TestFileStoreLoadPartialEntries(t *testing.T) {
	store := newTestFileStore(t)
	writeRaw(t, store.path, `[
  {"date": "2024-01-15", "amount": 3},
  {"id": 2, "amount": "12.5"},
  {"id": 3, "date": "2024-02-01", "category": "food", "description": "x"}
]`)

	records, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []core.Expense{
		{ID: 0, Date: "2024-01-15", Amount: 3},
		{ID: 2, Amount: 12.5},
		{ID: 3, Date: "2024-02-01", Category: "food", Description: "x", Amount: 0},
	}
	if !reflect.DeepEqual(records, want) {
		t.Fatalf("coercion mismatch:\ngot  %+v\nwant %+v", records, want)
	}
}

func TestFileStoreLoadUncoercibleAmount(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"non-numeric string", `[{"id": 1, "amount": "abc"}]`},
		{"object value", `[{"id": 1, "amount": {}}]`},
		{"array value", `[{"id": 1, "amount": [1]}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestFileStore(t)
			writeRaw(t, store.path, tc.body)

			_, err := store.Load(context.Background())
			if !errors.Is(err, ErrBadAmount) {
				t.Fatalf("expected ErrBadAmount, got %v", err)
			}
		})
	}
}

func TestFileStoreLoadNullAmount(t *testing.T) {
	store := newTestFileStore(t)
	writeRaw(t, store.path, `[{"id": 1, "amount": null}]`)

	records, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 1 || records[0].Amount != 0 {
		t.Fatalf("null amount should coerce to 0, got %+v", records)
	}
}

func writeRaw(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}
