package timecalc_test

import (
	"testing"
	"time"

	"github.com/ellieharper/otj/internal/timecalc"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9am", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := timecalc.ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		start, end string
		want       float64
	}{
		{"09:00", "10:30", 1.5},
		{"14:00", "17:00", 3.0},
		{"14:00", "14:45", 0.8}, // 45 min rounds up
		{"09:00", "12:15", 3.3}, // 195 min = 3.25, half away from zero
		{"09:00", "09:00", 0},
		{"10:00", "09:00", 0}, // end before start: no wraparound
		{"", "10:00", 0},
		{"09:00", "", 0},
		{"bogus", "10:00", 0},
	}
	for _, tt := range tests {
		got := timecalc.Duration(tt.start, tt.end)
		if got != tt.want {
			t.Errorf("Duration(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestDurationIdempotent(t *testing.T) {
	first := timecalc.Duration("09:00", "12:15")
	second := timecalc.Duration("09:00", "12:15")
	if first != second {
		t.Errorf("Duration not idempotent: %v then %v", first, second)
	}
}

func TestRoundHours(t *testing.T) {
	tests := []struct {
		minutes int
		want    float64
	}{
		{0, 0},
		{-30, 0},
		{30, 0.5},
		{45, 0.8},
		{90, 1.5},
		{195, 3.3},
		{480, 8.0},
	}
	for _, tt := range tests {
		if got := timecalc.RoundHours(tt.minutes); got != tt.want {
			t.Errorf("RoundHours(%d) = %v, want %v", tt.minutes, got, tt.want)
		}
	}
}

func TestWeekStart(t *testing.T) {
	// 2026-01-22 is a Thursday; the week began Sunday 2026-01-18.
	thu := time.Date(2026, 1, 22, 15, 30, 0, 0, time.UTC)
	want := time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC)
	if got := timecalc.WeekStart(thu); !got.Equal(want) {
		t.Errorf("WeekStart(thursday) = %v, want %v", got, want)
	}

	// A Sunday is its own week start.
	sun := time.Date(2026, 1, 18, 23, 0, 0, 0, time.UTC)
	if got := timecalc.WeekStart(sun); !got.Equal(want) {
		t.Errorf("WeekStart(sunday) = %v, want %v", got, want)
	}
}
