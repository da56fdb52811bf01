package util

import "time"

// DateTimeLayout renders DD-MM-YYYY HH:MM:SS on a 24-hour clock.
const DateTimeLayout = "02-01-2006 15:04:05"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatDateTime renders t in UTC using DateTimeLayout.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}

// CurrentDateTime returns the current UTC wall-clock time as DD-MM-YYYY HH:MM:SS.
func CurrentDateTime() string {
	return FormatDateTime(NowUTC())
}
