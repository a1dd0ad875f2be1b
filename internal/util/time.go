package util

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ParseTimeString parses a wall-clock time in 12-hour or 24-hour format and
// returns its next occurrence after now.
// Supported formats:
// - 24-hour: "HH:MM" (e.g., "23:30", "09:45")
// - 12-hour: "HH:MM[AM|PM]" (e.g., "11:30PM", "09:45AM")
func ParseTimeString(timeStr string) (time.Time, error) {
	return ParseTimeStringWithNow(timeStr, time.Now())
}

// ParseTimeStringWithNow is like ParseTimeString but accepts a custom "now" time.
func ParseTimeStringWithNow(timeStr string, now time.Time) (time.Time, error) {
	timeStr = strings.TrimSpace(strings.ToUpper(timeStr))

	formats := []string{"15:04", "3:04PM", "3:04 PM", "03:04PM", "03:04 PM"}
	for _, format := range formats {
		t, err := time.Parse(format, timeStr)
		if err != nil {
			continue
		}
		target := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
		if !target.After(now) {
			target = target.AddDate(0, 0, 1)
		}
		return target, nil
	}

	return time.Time{}, fmt.Errorf("invalid time format: %s\n\nValid formats:\n"+
		"• 24-hour format: HH:MM (e.g., '23:30', '09:45')\n"+
		"• 12-hour format: HH:MM[AM|PM] (e.g., '11:30PM', '9:45 AM')", timeStr)
}

// MinutesUntil returns the whole minutes from now until target, rounded up
// so the session never ends early. Targets in the past yield 0.
func MinutesUntil(target, now time.Time) int {
	d := target.Sub(now)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Minutes()))
}
