// Package journal holds the entry lifecycle core: turning form submissions
// into persistable payloads and maintaining the in-memory entry collection.
package journal

import (
	"fmt"
	"sort"

	"github.com/ellieharper/otj/internal/domain"
	"github.com/ellieharper/otj/internal/timecalc"
)

// DefaultDescription is stored when the description field is left blank.
const DefaultDescription = "No description provided"

// ValidationError reports a submission that must be corrected locally; it
// never reaches the network.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// DateSet is an ordered, deduplicated set of calendar dates, built up by
// repeated add/remove of individual values in multi-date mode.
type DateSet struct {
	dates []domain.Date
}

// Add inserts d keeping ascending order. Returns false when d was already present.
func (s *DateSet) Add(d domain.Date) bool {
	for _, existing := range s.dates {
		if existing.Equal(d) {
			return false
		}
	}
	s.dates = append(s.dates, d)
	sort.Slice(s.dates, func(i, j int) bool { return s.dates[i].Before(s.dates[j]) })
	return true
}

// Remove deletes d from the set. Returns false when d was not present.
func (s *DateSet) Remove(d domain.Date) bool {
	for i, existing := range s.dates {
		if existing.Equal(d) {
			s.dates = append(s.dates[:i], s.dates[i+1:]...)
			return true
		}
	}
	return false
}

func (s *DateSet) Len() int { return len(s.dates) }

// Dates returns the dates in ascending order.
func (s *DateSet) Dates() []domain.Date {
	out := make([]domain.Date, len(s.dates))
	copy(out, s.dates)
	return out
}

// FormData is the raw state of the entry form at submission time.
type FormData struct {
	Title       string
	Category    string
	Description string
	Date        domain.Date
	StartTime   string
	EndTime     string
	IsOffTheJob bool
	KSBs        []domain.KSBTag
	Documents   []domain.DocumentMeta

	// MultiDate selects fan-out mode: one payload per date in Dates.
	// Unavailable when editing, which always targets a single record.
	MultiDate bool
	Dates     DateSet
}

// Materialize turns a validated form submission into one or more entry
// payloads ready for the store. It is a pure transform: no I/O, inputs are
// never mutated. The duration is rederived from the time fields here so the
// payload always reflects the latest inputs.
func Materialize(form FormData, categories []domain.Category) ([]domain.EntryPayload, error) {
	if form.Title == "" {
		return nil, &ValidationError{Field: "title", Msg: "is required"}
	}
	if form.Category == "" {
		return nil, &ValidationError{Field: "category", Msg: "is required"}
	}
	if _, ok := domain.FindCategory(categories, form.Category); !ok {
		return nil, &ValidationError{Field: "category", Msg: fmt.Sprintf("unknown category %q", form.Category)}
	}
	if form.MultiDate && form.Dates.Len() == 0 {
		return nil, &ValidationError{Field: "dates", Msg: "select at least one date"}
	}

	description := form.Description
	if description == "" {
		description = DefaultDescription
	}

	base := domain.EntryPayload{
		Title:       form.Title,
		Category:    form.Category,
		Description: description,
		StartTime:   form.StartTime,
		EndTime:     form.EndTime,
		TotalHours:  timecalc.Duration(form.StartTime, form.EndTime),
		IsOffTheJob: form.IsOffTheJob,
		KSBs:        domain.DedupeKSBs(form.KSBs),
		Documents:   domain.FilterDocuments(form.Documents),
	}

	if !form.MultiDate {
		base.Date = form.Date
		return []domain.EntryPayload{base}, nil
	}

	dates := form.Dates.Dates()
	payloads := make([]domain.EntryPayload, 0, len(dates))
	for _, d := range dates {
		p := base
		p.Date = d
		payloads = append(payloads, p)
	}
	return payloads, nil
}
