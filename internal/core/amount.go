// Package core holds the expense entity, identifier allocation and the pure
// aggregation functions. Nothing in here touches a file.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts user input into a monetary amount.
//
// Both dot (12.34) and comma (12,34) decimal separators are accepted. Zero
// is a valid amount; negative values fail with ErrNegativeAmount and
// anything without a numeric form with ErrInvalidAmount.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	if v < 0 {
		return 0, ErrNegativeAmount
	}
	return v, nil
}
