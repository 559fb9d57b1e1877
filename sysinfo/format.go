// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	bytesPerMB = 1024 * 1024
)

// FormatUptime converts a number of seconds since boot into a human-readable
// string.
//
// Parameters:
//   - seconds: Seconds since boot; negative values are treated as zero
//
// Returns:
//   - A string like "2 days, 5 hours, 30 mins"
//
// Leading zero units are left out, minutes are always shown. Example:
// FormatUptime(3600) returns "1 hour, 0 min".
func FormatUptime(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	days := seconds / secondsPerDay
	hours := (seconds % secondsPerDay) / secondsPerHour
	mins := (seconds % secondsPerHour) / secondsPerMinute

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d day%s", days, plural(days)))
	}
	if hours > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", hours, plural(hours)))
	}
	parts = append(parts, fmt.Sprintf("%d min%s", mins, plural(mins)))

	return strings.Join(parts, ", ")
}

// plural returns "s" if count is greater than 1, so zero reads "0 min".
func plural(count int64) string {
	if count > 1 {
		return "s"
	}
	return ""
}

// FormatMemory renders used and total megabytes.
//
// Example: FormatMemory(2048, 7982) returns "2048 MB / 7982 MB"
func FormatMemory(usedMB, totalMB uint64) string {
	return fmt.Sprintf("%d MB / %d MB", usedMB, totalMB)
}
