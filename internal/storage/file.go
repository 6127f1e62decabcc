// Package storage persists the expense record set. The JSON file store is
// the primary backend; a SQLite store offers the same contract for anyone
// who prefers a database file.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"spendlog/internal/core"
)

// ErrBadAmount marks a stored amount that has no numeric interpretation.
// Unlike a corrupt file, which loads as empty, this fails the whole load:
// silently zeroing a present but broken monetary value would skew totals.
var ErrBadAmount = errors.New("stored amount is not a number")

// FileStore reads and writes the record set as an indented JSON array.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// storedExpense mirrors one JSON entry during load. Amount stays raw so a
// present but non-numeric value can be told apart from a missing one.
type storedExpense struct {
	ID          int             `json:"id"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      json.RawMessage `json:"amount"`
}

// Load reads the full record set. A missing file and a file that is not
// valid JSON both yield an empty set; only an uncoercible amount value is an
// error.
func (s *FileStore) Load(ctx context.Context) ([]core.Expense, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []core.Expense{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read expense file: %w", err)
	}

	var stored []storedExpense
	if err := json.Unmarshal(data, &stored); err != nil {
		slog.WarnContext(ctx, "Expense file is not valid JSON, starting empty",
			"path", s.path, "error", err)
		return []core.Expense{}, nil
	}

	records := make([]core.Expense, 0, len(stored))
	for i, e := range stored {
		amount, err := coerceAmount(e.Amount)
		if err != nil {
			return nil, fmt.Errorf("entry %d in %s: %w", i, s.path, err)
		}
		records = append(records, core.Expense{
			ID:          e.ID,
			Date:        e.Date,
			Category:    e.Category,
			Description: e.Description,
			Amount:      amount,
		})
	}

	slog.DebugContext(ctx, "Expenses loaded", "path", s.path, "count", len(records))
	return records, nil
}

// Save replaces the file with the full record set in insertion order.
func (s *FileStore) Save(ctx context.Context, records []core.Expense) error {
	if records == nil {
		records = []core.Expense{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode expenses: %w", err)
	}
	if err := s.writeFile(append(data, '\n')); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Expenses saved", "path", s.path, "count", len(records))
	return nil
}

// Reset overwrites the file with an empty set, regardless of what is in
// memory.
func (s *FileStore) Reset(ctx context.Context) error {
	if err := s.writeFile([]byte("[]\n")); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Expense store reset", "path", s.path)
	return nil
}

func (s *FileStore) Close() error {
	return nil
}

// writeFile replaces the data file through a temp file in the same
// directory, so a failed write cannot truncate existing data.
func (s *FileStore) writeFile(data []byte) error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write expense file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace expense file: %w", err)
	}
	return nil
}

// coerceAmount applies the load-time coercion rules: absent or null becomes
// zero, numbers pass through, numeric strings convert, anything else fails.
func coerceAmount(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrBadAmount, raw)
	}
	switch val := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return val, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadAmount, val)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrBadAmount, raw)
	}
}
