// Package datekey derives the stable string keys used to index per-day
// records in the store.
package datekey

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const layoutISO = "2006-01-02"

// Encode builds the canonical key for (year, zero-based month, day).
// Inputs must already be normalized by calendar arithmetic; no range
// validation happens here.
func Encode(year, month0, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month0+1, day)
}

// ForDate is Encode for a time.Time.
func ForDate(t time.Time) string {
	return Encode(t.Year(), int(t.Month())-1, t.Day())
}

// Parse turns a canonical key back into a date.
func Parse(key string) (time.Time, error) {
	return time.Parse(layoutISO, key)
}

// Normalize accepts a stored key in either the canonical padded form or the
// legacy unpadded zero-based-month form ("2024-0-5" for January 5th, 2024)
// and returns the canonical key. The second return reports whether the input
// was a recognizable key at all.
func Normalize(key string) (string, bool) {
	if t, err := Parse(key); err == nil {
		return ForDate(t), true
	}
	parts := strings.Split(key, "-")
	if len(parts) != 3 {
		return "", false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", false
	}
	month0, err := strconv.Atoi(parts[1])
	if err != nil || month0 < 0 || month0 > 11 {
		return "", false
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return "", false
	}
	return Encode(year, month0, day), true
}
