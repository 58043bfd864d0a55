package services

import (
	"fmt"
	"strings"
)

// FormatDOP formats an amount as Dominican pesos for quote documents:
// RD$ prefix, comma thousands groups, exactly 2 decimal places
// (e.g. RD$12,345.60).
func FormatDOP(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "RD$" + groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas every 3 digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

// FormatPercent renders a percentage with 2 decimals for documents.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}
