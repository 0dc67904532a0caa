package services

import (
	"fmt"
	"math"
	"strings"
)

// FormatMoney formats an amount with thousands separators and exactly two
// decimal places, e.g. 1234567.8 → "1,234,567.80".
func FormatMoney(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas into an integer string every three digits
// from the right.
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

// FormatQty returns a string representation of a quantity value. Whole
// numbers are formatted without decimals; fractional values get 2 decimals.
func FormatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}

// FormatArea renders a square-meter value for display.
func FormatArea(v float64) string {
	return fmt.Sprintf("%.2f m²", v)
}

// FormatLength renders a meter value for display.
func FormatLength(v float64) string {
	return fmt.Sprintf("%.2f m", v)
}
