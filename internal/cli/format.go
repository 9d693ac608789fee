// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a dollar amount with comma grouping and cents.
// e.g., 1234.5 -> "$1,234.50", -42 -> "-$42.00"
func FormatMoney(v float64) string {
	if v < 0 {
		return "-" + FormatMoney(-v)
	}

	cents := int64(math.Round(v * 100))
	return fmt.Sprintf("$%s.%02d", FormatNumber(cents/100), cents%100)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatAPR formats an annual percentage rate given in percent.
func FormatAPR(apr float64) string {
	return fmt.Sprintf("%.2f%%", apr)
}

// FormatMonths formats a month count as years and months.
// e.g., 7 -> "7mo", 18 -> "18mo (1y 6m)"
func FormatMonths(months int) string {
	if months < 12 {
		return fmt.Sprintf("%dmo", months)
	}
	y := months / 12
	m := months % 12
	if m == 0 {
		return fmt.Sprintf("%dmo (%dy)", months, y)
	}
	return fmt.Sprintf("%dmo (%dy %dm)", months, y, m)
}
