package services

import (
	"strconv"
	"strings"
)

// FormulaPrefix marks a price field entered as a formula instead of a
// literal, e.g. "=12*4.5".
const FormulaPrefix = "="

// Price is the tri-state value used by every price-bearing field: a
// resolved literal amount, an unresolved formula string, or absent
// (not yet provided). Manual records that the user explicitly set the
// field; automatic recomputation never overwrites a manual price.
type Price struct {
	Value   *float64 `json:"value"`
	Formula string   `json:"formula,omitempty"`
	Manual  bool     `json:"manual,omitempty"`
}

// LiteralPrice returns a resolved literal price.
func LiteralPrice(v float64) Price {
	return Price{Value: &v}
}

// ParsePrice interprets raw field input: empty input is absent, input
// starting with "=" is an unresolved formula, anything else is parsed
// as a literal (non-numeric input degrades to absent). The result is
// always flagged manual since it came from the user.
func ParsePrice(input string) Price {
	input = strings.TrimSpace(input)
	if input == "" {
		return Price{Manual: true}
	}
	if strings.HasPrefix(input, FormulaPrefix) {
		return Price{Formula: input, Manual: true}
	}
	v, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return Price{Manual: true}
	}
	return Price{Value: &v, Manual: true}
}

// Resolve collapses a formula price into a literal by evaluating the
// expression after the "=" marker; the formula is cleared afterwards.
// Literal and absent prices are returned unchanged.
func (p Price) Resolve() Price {
	if p.Formula == "" {
		return p
	}
	v := Evaluate(strings.TrimPrefix(p.Formula, FormulaPrefix))
	return Price{Value: &v, Manual: p.Manual}
}

// Amount returns the literal value, or 0 when the price is absent or
// still an unresolved formula.
func (p Price) Amount() float64 {
	if p.Value == nil {
		return 0
	}
	return *p.Value
}

// IsAbsent reports whether the price carries neither a literal value
// nor a pending formula.
func (p Price) IsAbsent() bool {
	return p.Value == nil && p.Formula == ""
}
