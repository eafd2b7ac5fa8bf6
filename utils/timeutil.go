package utils

import "fmt"

// ParseClock converts "HH:MM" to minutes since midnight. Returns -1 for
// anything that does not parse, so callers can skip malformed activities.
func ParseClock(clock string) int {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return -1
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return -1
	}
	return h*60 + m
}

// FormatClock converts minutes since midnight back to "HH:MM", clamping into
// the same day.
func FormatClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes > 23*60+59 {
		minutes = 23*60 + 59
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
