// Package utils provides small shared helpers for inkwell
package utils

import "time"

// FormatDisplayDate renders a timestamp as a human-readable publication date,
// e.g. "August 30, 2026". Uses the zone of the passed time; callers stamp
// posts with time.Now() so the server's local zone applies.
func FormatDisplayDate(t time.Time) string {
	return t.Format("January 02, 2006")
}
