package core

import "sort"

// CategoryTotal is an amount aggregated under one category label.
type CategoryTotal struct {
	Category string
	Amount   float64
}

// MonthTotal is an amount aggregated under one YYYY-MM month key.
type MonthTotal struct {
	Month  string
	Amount float64
}

// Total returns the sum of all amounts; zero for an empty set.
func Total(records []Expense) float64 {
	var sum float64
	for _, e := range records {
		sum += e.Amount
	}
	return sum
}

// TotalsByCategory groups records by exact category text and sums each
// group. The result is ordered by ascending category name so report output
// stays reproducible run to run.
func TotalsByCategory(records []Expense) []CategoryTotal {
	sums := make(map[string]float64)
	for _, e := range records {
		sums[e.Category] += e.Amount
	}
	out := make([]CategoryTotal, 0, len(sums))
	for category, amount := range sums {
		out = append(out, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// TotalsByMonth groups records by the YYYY-MM prefix of their date and sums
// each group, ordered by ascending month key. Dates shorter than seven
// characters group under whatever prefix they have.
func TotalsByMonth(records []Expense) []MonthTotal {
	sums := make(map[string]float64)
	for _, e := range records {
		sums[MonthKey(e.Date)] += e.Amount
	}
	out := make([]MonthTotal, 0, len(sums))
	for month, amount := range sums {
		out = append(out, MonthTotal{Month: month, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// MonthKey returns the month grouping key for a date string.
func MonthKey(date string) string {
	if len(date) > 7 {
		return date[:7]
	}
	return date
}
