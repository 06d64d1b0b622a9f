// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"tripdash/internal/model"
)

// FormatMoney formats a USD amount. Whole-dollar amounts drop the cents.
// Negative amounts (over budget) keep their sign: -$12.50.
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(-amount)
	}
	if amount == float64(int64(amount)) {
		return "$" + FormatNumber(int64(amount))
	}
	return fmt.Sprintf("$%.2f", amount)
}

// FormatMiles formats a mileage value: whole numbers without decimals.
// e.g., 297 -> "297 mi", 4.5 -> "4.5 mi"
func FormatMiles(miles float64) string {
	if miles == float64(int64(miles)) {
		return FormatNumber(int64(miles)) + " mi"
	}
	return fmt.Sprintf("%.1f mi", miles)
}

// FormatHours formats a driving duration given in hours.
// e.g., 4.5 -> "4h 30m", 7 -> "7h"
func FormatHours(hours float64) string {
	h := int(hours)
	m := int(hours*60) % 60
	if m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
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

// FormatBytes renders a byte count with a binary unit suffix.
// e.g., 512 -> "512 B", 2621440 -> "2.5 MiB"
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGT"[exp])
}

// FormatPercent formats a 0-100 value as a percentage string.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}

// FormatCountdown renders a countdown compactly.
// e.g., {11 3 25 9} -> "11d 3h 25m 9s", elapsed -> "departed"
func FormatCountdown(c model.Countdown) string {
	if c.IsZero() {
		return "departed"
	}
	if c.Days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", c.Days, c.Hours, c.Minutes, c.Seconds)
	}
	if c.Hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", c.Hours, c.Minutes, c.Seconds)
	}
	if c.Minutes > 0 {
		return fmt.Sprintf("%dm %ds", c.Minutes, c.Seconds)
	}
	return fmt.Sprintf("%ds", c.Seconds)
}
