package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ellieharper/otj/internal/domain"
	"github.com/ellieharper/otj/internal/progress"
)

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "1.5h", FormatHours(1.5))
	assert.Equal(t, "3h", FormatHours(3.0))
	assert.Equal(t, "0.8h", FormatHours(0.75))
	assert.Equal(t, "0h", FormatHours(0))
	assert.Equal(t, "-1h", FormatHours(-1))
}

func TestFormatEntryLine(t *testing.T) {
	e := domain.JournalEntry{
		ID:          1,
		Title:       "Sprint retro notes",
		Category:    "Team training sessions",
		Date:        domain.NewDate(2026, time.January, 22),
		TotalHours:  1.5,
		IsOffTheJob: true,
		KSBs:        []domain.KSBTag{{ID: "S3"}, {ID: "B1"}},
	}

	line := FormatEntryLine(e, false)
	assert.Contains(t, line, "2026-01-22")
	assert.Contains(t, line, "1.5h")
	assert.Contains(t, line, "Sprint retro notes")
	assert.Contains(t, line, "S3 B1")
}

func TestFormatDashboard_Variance(t *testing.T) {
	snap := progress.Snapshot{
		TotalOTJHours:       5,
		CurrentWeekOTJHours: 5,
		Variance:            -1,
		PercentageComplete:  1.6,
		HoursRemaining:      307,
		EntryCount:          3,
		OTJEntryCount:       2,
	}
	targets := progress.Targets{WeeklyHours: 6, AnnualHours: 312}

	out := FormatDashboard(snap, targets, false)
	assert.Contains(t, out, "BEHIND")
	assert.Contains(t, out, "(-1h)")
	assert.Contains(t, out, "5h logged")

	// Holiday mode replaces the variance readout entirely.
	out = FormatDashboard(snap, targets, true)
	assert.Contains(t, out, "holiday mode")
	assert.NotContains(t, out, "BEHIND")
}

func TestFormatHolidayCard(t *testing.T) {
	r := domain.HolidayRecord{Enabled: true, DaysUsed: 7, Allowance: 28}
	out := FormatHolidayCard(r)
	assert.Contains(t, out, "7 / 28 days")
	assert.Contains(t, out, "21 days")
	assert.Contains(t, out, "weekly target paused")
}

func TestRenderProgress_Clamps(t *testing.T) {
	assert.Contains(t, RenderProgress(1.7, 10), "100%")
	assert.Contains(t, RenderProgress(-0.3, 10), "0%")
	assert.Contains(t, RenderProgress(0.45, 10), "45%")
}
