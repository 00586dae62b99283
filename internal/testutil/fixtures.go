// Package testutil provides fixture builders shared across test packages.
package testutil

import (
	"sync/atomic"
	"time"

	"github.com/ellieharper/otj/internal/domain"
)

// EntryOption customises a test entry.
type EntryOption func(*domain.JournalEntry)

var entryIDCounter atomic.Int64

// NewTestEntry builds an off-the-job journal entry with sensible defaults.
func NewTestEntry(title string, opts ...EntryOption) domain.JournalEntry {
	e := domain.JournalEntry{
		ID:          entryIDCounter.Add(1),
		Title:       title,
		Category:    "Research and self-study",
		Description: "No description provided",
		Date:        domain.NewDate(2026, time.January, 22),
		StartTime:   "09:00",
		EndTime:     "10:00",
		TotalHours:  1.0,
		IsOffTheJob: true,
		CreatedAt:   time.Date(2026, time.January, 23, 15, 43, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func WithID(id int64) EntryOption {
	return func(e *domain.JournalEntry) { e.ID = id }
}

func WithDate(d domain.Date) EntryOption {
	return func(e *domain.JournalEntry) { e.Date = d }
}

func WithHours(hours float64) EntryOption {
	return func(e *domain.JournalEntry) { e.TotalHours = hours }
}

func WithOnTheJob() EntryOption {
	return func(e *domain.JournalEntry) { e.IsOffTheJob = false }
}

func WithCategory(name string) EntryOption {
	return func(e *domain.JournalEntry) { e.Category = name }
}

func WithCreatedAt(t time.Time) EntryOption {
	return func(e *domain.JournalEntry) { e.CreatedAt = t }
}

func WithKSBs(tags ...domain.KSBTag) EntryOption {
	return func(e *domain.JournalEntry) { e.KSBs = tags }
}

// FixedClock returns a clock function pinned to t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
