// Package app implements the interactive menu session of the expense
// tracker. The record set is loaded once at startup and threaded through
// every operation; the store is written back after each mutation.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"spendlog/internal/backend"
	"spendlog/internal/core"
	applog "spendlog/internal/log"
)

const menu = `
============================
      Expense Tracker
============================
1. Add Expense
2. List Expenses
3. Summary by Category
4. Summary by Month
5. Reset All Records
6. Exit
`

// App drives the interactive session. Input and output are injected so the
// loop can be exercised against in-memory buffers in tests.
type App struct {
	store  backend.Store
	logger *applog.Logger
	in     *bufio.Scanner
	out    io.Writer
	now    func() time.Time
}

func New(store backend.Store, logger *applog.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		store:  store,
		logger: logger.WithComponent(applog.ComponentMenu),
		in:     bufio.NewScanner(in),
		out:    out,
		now:    time.Now,
	}
}

// Run loads the record set and serves menu commands until the user exits or
// input ends.
func (a *App) Run(ctx context.Context) error {
	records, err := a.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}

	for {
		fmt.Fprint(a.out, menu)
		choice, ok := a.prompt("Select an option (1-6): ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			records = a.addExpense(ctx, records)
		case "2":
			a.listExpenses(records)
		case "3":
			a.summaryByCategory(records)
		case "4":
			a.summaryByMonth(records)
		case "5":
			records = a.resetRecords(ctx, records)
		case "6":
			fmt.Fprintln(a.out, "Goodbye!")
			return nil
		default:
			fmt.Fprint(a.out, "Invalid option.\n\n")
		}
	}
}

// prompt prints the label and reads one trimmed line. ok is false once the
// input is exhausted.
func (a *App) prompt(label string) (string, bool) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) addExpense(ctx context.Context, records []core.Expense) []core.Expense {
	fmt.Fprintln(a.out, "\n--- Add Expense ---")

	today := a.now().Format(core.DateLayout)
	date, ok := a.prompt(fmt.Sprintf("Date (YYYY-MM-DD) [default: %s]: ", today))
	if !ok {
		return records
	}
	if date == "" {
		date = today
	}

	category, ok := a.prompt("Category: ")
	if !ok {
		return records
	}
	description, ok := a.prompt("Description: ")
	if !ok {
		return records
	}

	var amount float64
	for {
		raw, ok := a.prompt("Amount: ")
		if !ok {
			return records
		}
		v, err := core.ParseAmount(raw)
		if errors.Is(err, core.ErrNegativeAmount) {
			fmt.Fprintln(a.out, "Amount cannot be negative.")
			continue
		}
		if err != nil {
			fmt.Fprintln(a.out, "Enter a valid number (example: 99.50)")
			continue
		}
		amount = v
		break
	}

	entry, err := core.NewExpense(core.NextID(records), date, category, description, amount)
	if err != nil {
		a.logger.Error("Failed to build expense", "error", err)
		return records
	}

	updated := append(records, entry)
	if err := a.store.Save(ctx, updated); err != nil {
		a.logger.Error("Failed to save expenses", "error", err, "expense_id", entry.ID)
		fmt.Fprintf(a.out, "Could not save expense: %v\n\n", err)
		return records
	}

	fmt.Fprintf(a.out, "Added expense #%d successfully.\n\n", entry.ID)
	return updated
}

func (a *App) listExpenses(records []core.Expense) {
	fmt.Fprintln(a.out, "\n--- All Expenses ---")
	if len(records) == 0 {
		fmt.Fprint(a.out, "No expenses recorded.\n\n")
		return
	}

	fmt.Fprintf(a.out, "%-4s %-12s %-15s %10s  %s\n", "ID", "Date", "Category", "Amount", "Description")
	fmt.Fprintln(a.out, strings.Repeat("-", 62))
	for _, e := range records {
		fmt.Fprintf(a.out, "%-4d %-12s %-15s %10.2f  %s\n", e.ID, e.Date, e.Category, e.Amount, e.Description)
	}
	fmt.Fprintln(a.out, strings.Repeat("-", 62))
	fmt.Fprintf(a.out, "%-4s %-12s %-15s %10.2f\n\n", "", "", "TOTAL", core.Total(records))
}

func (a *App) summaryByCategory(records []core.Expense) {
	fmt.Fprintln(a.out, "\n--- Category Summary ---")
	if len(records) == 0 {
		fmt.Fprint(a.out, "No expenses recorded.\n\n")
		return
	}

	fmt.Fprintf(a.out, "%-20s %15s\n", "Category", "Total Spent")
	fmt.Fprintln(a.out, strings.Repeat("-", 38))
	for _, ct := range core.TotalsByCategory(records) {
		fmt.Fprintf(a.out, "%-20s %15.2f\n", ct.Category, ct.Amount)
	}
	fmt.Fprintln(a.out)
}

func (a *App) summaryByMonth(records []core.Expense) {
	fmt.Fprintln(a.out, "\n--- Monthly Summary ---")
	if len(records) == 0 {
		fmt.Fprint(a.out, "No expenses recorded.\n\n")
		return
	}

	fmt.Fprintf(a.out, "%-10s %15s\n", "Month", "Total Spent")
	fmt.Fprintln(a.out, strings.Repeat("-", 28))
	for _, mt := range core.TotalsByMonth(records) {
		fmt.Fprintf(a.out, "%-10s %15.2f\n", mt.Month, mt.Amount)
	}
	fmt.Fprintln(a.out)
}

func (a *App) resetRecords(ctx context.Context, records []core.Expense) []core.Expense {
	confirm, ok := a.prompt("\nAre you sure you want to clear ALL expenses? This cannot be undone. (yes/no): ")
	if !ok {
		return records
	}

	switch strings.ToLower(confirm) {
	case "yes", "y":
	default:
		fmt.Fprint(a.out, "Reset cancelled.\n\n")
		return records
	}

	if err := a.store.Reset(ctx); err != nil {
		a.logger.Error("Failed to reset expense store", "error", err)
		fmt.Fprintf(a.out, "Could not reset records: %v\n\n", err)
		return records
	}

	reloaded, err := a.store.Load(ctx)
	if err != nil {
		a.logger.Error("Failed to reload after reset", "error", err)
		reloaded = []core.Expense{}
	}

	fmt.Fprint(a.out, "All expense records cleared.\n\n")
	return reloaded
}
