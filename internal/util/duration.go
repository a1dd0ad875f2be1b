package util

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// MaxMinutes is the longest duration, in minutes, a time.Duration can hold.
const MaxMinutes = math.MaxInt64 / int64(time.Minute)

// ErrInvalidDuration matches every InvalidDurationError via errors.Is.
var ErrInvalidDuration = errors.New("invalid duration")

// InvalidDurationError reports input that is not a positive whole number of minutes.
type InvalidDurationError struct {
	Input string
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("Invalid duration: %q\n\nValid formats:\n"+
		"• A positive whole number of minutes (e.g., '30', '120')\n"+
		"• At most %d minutes", e.Input, MaxMinutes)
}

func (e *InvalidDurationError) Is(target error) bool {
	return target == ErrInvalidDuration
}

// ValidMinutes reports whether minutes is positive and fits in a time.Duration.
func ValidMinutes(minutes int) bool {
	return minutes > 0 && int64(minutes) <= MaxMinutes
}

// ParseMinutes parses a positive base-10 number of minutes.
func ParseMinutes(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	minutes, err := strconv.Atoi(trimmed)
	if err != nil || !ValidMinutes(minutes) {
		return 0, &InvalidDurationError{Input: trimmed}
	}
	return minutes, nil
}
