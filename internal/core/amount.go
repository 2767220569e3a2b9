// Package core provides the transaction domain model and the pure
// derived-statistics functions over a ledger snapshot.
//
// This file contains amount parsing for user-supplied input. Amounts are
// currency-agnostic magnitudes kept at the numeric type's native precision;
// two-decimal formatting is a presentation concern, not handled here.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts a user-supplied amount string to a non-negative
// float64. It accepts both dot (12.34) and comma (12,34) decimal separators.
// Signs are rejected: the transaction type carries the direction, so the
// magnitude itself must be plain.
//
// Examples:
//
//	ParseAmount("12.34") -> 12.34, nil
//	ParseAmount("12,34") -> 12.34, nil
//	ParseAmount("-5")    -> 0, ErrInvalidAmount
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
