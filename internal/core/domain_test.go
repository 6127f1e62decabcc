package core

import (
	"errors"
	"testing"
)

func TestNewExpense(t *testing.T) {
	e, err := NewExpense(3, "2024-01-15", "food", "lunch", 12.5)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if e.ID != 3 || e.Date != "2024-01-15" || e.Category != "food" || e.Description != "lunch" || e.Amount != 12.5 {
		t.Fatalf("unexpected expense: %+v", e)
	}
}

func TestNewExpenseDefaults(t *testing.T) {
	e, err := NewExpense(1, "2024-01-15", "", "  ", 0)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if e.Category != DefaultCategory {
		t.Errorf("category = %q, want %q", e.Category, DefaultCategory)
	}
	if e.Description != DefaultDescription {
		t.Errorf("description = %q, want %q", e.Description, DefaultDescription)
	}
	if e.Amount != 0 {
		t.Errorf("zero amount must be accepted, got %v", e.Amount)
	}
}

func TestNewExpenseNegativeAmount(t *testing.T) {
	_, err := NewExpense(1, "2024-01-15", "food", "lunch", -0.01)
	if !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestNextID(t *testing.T) {
	cases := []struct {
		name    string
		records []Expense
		want    int
	}{
		{"empty set", nil, 1},
		{"single record", []Expense{{ID: 1}}, 2},
		{"non-contiguous ids", []Expense{{ID: 1}, {ID: 5}, {ID: 3}}, 6},
		{"zero ids from a legacy file", []Expense{{ID: 0}, {ID: 0}}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextID(tc.records); got != tc.want {
				t.Fatalf("NextID = %d, want %d", got, tc.want)
			}
		})
	}
}
