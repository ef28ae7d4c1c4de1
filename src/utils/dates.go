package utils

import (
	"time"
)

// ShortSlashDateLayout is the legacy display format used across the API
// for holding, log and conversion dates, e.g. "03/07/25".
const ShortSlashDateLayout = "01/02/06"

// FormatShortDate renders t in the legacy MM/DD/YY display format.
func FormatShortDate(t time.Time) string {
	return t.Format(ShortSlashDateLayout)
}

// ParseShortDate parses a MM/DD/YY display date.
func ParseShortDate(s string) (time.Time, error) {
	return time.Parse(ShortSlashDateLayout, s)
}
