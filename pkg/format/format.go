// Package format provides human-readable rendering helpers for report fields.
//
// Every function here is total: malformed input falls back to a sentinel
// value ("N/A", "0") instead of returning an error, so callers can render
// reports without error plumbing.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// ShortNumber abbreviates a count using K/M/B/T units.
// Values below 1000 are returned unchanged. Scaled values of 100 or more
// render without decimals, smaller ones with a single decimal.
func ShortNumber(n int64) string {
	if n > -1000 && n < 1000 {
		return strconv.FormatInt(n, 10)
	}
	value := float64(n)
	for _, unit := range []string{"", "K", "M", "B", "T"} {
		if value < 1000 && value > -1000 {
			if unit == "" {
				return strconv.FormatInt(int64(value), 10)
			}
			if value >= 100 || value <= -100 {
				return fmt.Sprintf("%d%s", int64(value+0.5), unit)
			}
			return fmt.Sprintf("%s%s", trimTrailingZero(value), unit)
		}
		value /= 1000.0
	}
	return fmt.Sprintf("%s%s", trimTrailingZero(value), "T")
}

// trimTrailingZero renders a one-decimal float, dropping ".0".
func trimTrailingZero(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}

// HumanDate renders an RFC3339 timestamp as "January 02, 2006 — 03:04 PM".
// Empty or unparsable input yields "N/A".
func HumanDate(iso string) string {
	if iso == "" {
		return "N/A"
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "N/A"
	}
	return t.Format("January 02, 2006 — 03:04 PM")
}

// Seconds renders a duration in whole seconds as "Xm Ys".
// Zero or negative input yields "N/A" (an empty bucket has no average).
func Seconds(secs float64) string {
	if secs <= 0 {
		return "N/A"
	}
	total := int(secs)
	return fmt.Sprintf("%dm %ds", total/60, total%60)
}
