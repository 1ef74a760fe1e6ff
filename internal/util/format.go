package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDuration formats a duration as seconds with millisecond precision.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// FormatSeconds formats a duration in seconds with two decimals.
func FormatSeconds(secs float64) string {
	return fmt.Sprintf("%.2fs", secs)
}

// FormatNumber prints v with the fewest digits that round-trip, without
// exponents, e.g. 0.25, 1, -0.55.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatList joins numbers with ", ".
func FormatList(vs ...float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = FormatNumber(v)
	}
	return strings.Join(parts, ", ")
}
