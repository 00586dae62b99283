package timecalc

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseClock parses a wall-clock "HH:MM" value into minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("parsing clock time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("parsing clock time %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("parsing clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parsing clock time %q: out of range", s)
	}
	return h*60 + m, nil
}

// ValidateClock reports whether s is a well-formed HH:MM value.
// An empty string is valid: both time fields are optional.
func ValidateClock(s string) error {
	if s == "" {
		return nil
	}
	_, err := ParseClock(s)
	return err
}

// Duration derives decimal hours from a same-day start/end pair.
// End at or before start yields 0 — no wraparound and no negatives.
// Missing or malformed inputs also yield 0; format errors are the form
// layer's concern. The result is rounded to one decimal, half away from
// zero, so 45 minutes is 0.8 and 195 minutes is 3.3.
func Duration(start, end string) float64 {
	startMin, err := ParseClock(start)
	if err != nil {
		return 0
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return 0
	}
	return RoundHours(endMin - startMin)
}

// RoundHours converts a minute count to hours rounded to one decimal.
// Non-positive minute counts round to 0.
func RoundHours(minutes int) float64 {
	if minutes <= 0 {
		return 0
	}
	hours := decimal.NewFromInt(int64(minutes)).
		Div(decimal.NewFromInt(60)).
		Round(1)
	return hours.InexactFloat64()
}

// WeekStart returns midnight of the most recent Sunday on or before t,
// in t's location. Sunday is day index 0, matching the dashboard's
// current-week window.
func WeekStart(t time.Time) time.Time {
	t = t.AddDate(0, 0, -int(t.Weekday()))
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
