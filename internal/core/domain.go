package core

import (
	"errors"
	"strings"
)

const (
	// DateLayout is the canonical date format for expense entries.
	DateLayout = "2006-01-02"

	DefaultCategory    = "uncategorized"
	DefaultDescription = "No description"
)

// Expense is a single spending entry. The json tags double as the key names
// of the on-disk storage format.
type Expense struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"` // YYYY-MM-DD, kept lenient
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// NewExpense builds a validated expense. A blank category or description
// falls back to its default; a negative amount is rejected.
func NewExpense(id int, date, category, description string, amount float64) (Expense, error) {
	if amount < 0 {
		return Expense{}, ErrNegativeAmount
	}
	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}
	if strings.TrimSpace(description) == "" {
		description = DefaultDescription
	}
	return Expense{
		ID:          id,
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      amount,
	}, nil
}

// NextID returns the next free identifier for the given records: one more
// than the current maximum, or 1 for an empty set. Gaps left by external
// edits are never refilled, so an id is never handed out twice.
func NextID(records []Expense) int {
	max := 0
	for _, e := range records {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}
