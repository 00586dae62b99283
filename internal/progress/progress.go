// Package progress computes aggregate OTJ statistics from the entry
// collection. Everything here is a pure function of its inputs; the caller
// supplies "now" so the current-week window is testable.
package progress

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ellieharper/otj/internal/domain"
	"github.com/ellieharper/otj/internal/timecalc"
)

// Targets holds the configured OTJ hour targets. Both are plain inputs,
// never derived here.
type Targets struct {
	WeeklyHours float64
	AnnualHours float64
}

// Snapshot is a derived view of progress against the targets. It is
// recomputed on demand and is never a source of truth.
type Snapshot struct {
	TotalOTJHours       float64
	CurrentWeekOTJHours float64
	Variance            float64
	PercentageComplete  float64
	HoursRemaining      float64
	EntryCount          int
	OTJEntryCount       int
}

// Compute aggregates the entry collection against the targets. Holiday mode
// forces the weekly variance to zero — the penalty/bonus signal is fully
// suppressed, not hidden. The annual percentage is clamped at 100.
func Compute(entries []domain.JournalEntry, targets Targets, holidayEnabled bool, now time.Time) Snapshot {
	weekStart := domain.DateOf(timecalc.WeekStart(now))

	total := decimal.Zero
	week := decimal.Zero
	otjCount := 0
	for _, e := range entries {
		if !e.IsOffTheJob {
			continue
		}
		otjCount++
		hours := decimal.NewFromFloat(e.TotalHours)
		total = total.Add(hours)
		if !e.Date.Before(weekStart) {
			week = week.Add(hours)
		}
	}

	snap := Snapshot{
		TotalOTJHours:       total.InexactFloat64(),
		CurrentWeekOTJHours: week.InexactFloat64(),
		EntryCount:          len(entries),
		OTJEntryCount:       otjCount,
	}

	if !holidayEnabled {
		snap.Variance = total.Sub(decimal.NewFromFloat(targets.WeeklyHours)).InexactFloat64()
	}

	annual := decimal.NewFromFloat(targets.AnnualHours)
	if annual.IsPositive() {
		pct := total.Div(annual).Mul(decimal.NewFromInt(100))
		if pct.GreaterThan(decimal.NewFromInt(100)) {
			pct = decimal.NewFromInt(100)
		}
		snap.PercentageComplete = pct.InexactFloat64()
		snap.HoursRemaining = annual.Sub(total).InexactFloat64()
	}

	return snap
}
