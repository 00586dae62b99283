package cli

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellieharper/otj/internal/config"
	"github.com/ellieharper/otj/internal/domain"
	"github.com/ellieharper/otj/internal/teatest"
	"github.com/ellieharper/otj/internal/testutil"
)

// ── fakes ────────────────────────────────────────────────────────────────────

type fakeEntries struct {
	entries []domain.JournalEntry
	listErr error
	deleted []int64
}

func (f *fakeEntries) List(context.Context) ([]domain.JournalEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.JournalEntry(nil), f.entries...), nil
}

func (f *fakeEntries) Create(_ context.Context, p domain.EntryPayload) (domain.JournalEntry, error) {
	batch, err := f.CreateBatch(context.Background(), []domain.EntryPayload{p})
	if err != nil {
		return domain.JournalEntry{}, err
	}
	return batch[0], nil
}

func (f *fakeEntries) CreateBatch(_ context.Context, payloads []domain.EntryPayload) ([]domain.JournalEntry, error) {
	var created []domain.JournalEntry
	for i, p := range payloads {
		e := domain.JournalEntry{
			ID:          int64(len(f.entries) + i + 1),
			Title:       p.Title,
			Category:    p.Category,
			Date:        p.Date,
			TotalHours:  p.TotalHours,
			IsOffTheJob: p.IsOffTheJob,
			CreatedAt:   time.Now(),
		}
		created = append(created, e)
	}
	f.entries = append(f.entries, created...)
	return created, nil
}

func (f *fakeEntries) Update(_ context.Context, id int64, p domain.EntryPayload) (domain.JournalEntry, error) {
	for i, e := range f.entries {
		if e.ID == id {
			e.Title = p.Title
			e.Date = p.Date
			f.entries[i] = e
			return e, nil
		}
	}
	return domain.JournalEntry{}, errors.New("not found")
}

func (f *fakeEntries) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			break
		}
	}
	return nil
}

type fakeHolidays struct {
	record domain.HolidayRecord
}

func (f *fakeHolidays) Load(context.Context) (domain.HolidayRecord, error) {
	return f.record, nil
}

func (f *fakeHolidays) Record() domain.HolidayRecord { return f.record }

func (f *fakeHolidays) SetEnabled(_ context.Context, enabled bool) (domain.HolidayRecord, error) {
	f.record.Enabled = enabled
	return f.record, nil
}

func (f *fakeHolidays) SetDaysUsed(_ context.Context, days int) (domain.HolidayRecord, error) {
	f.record = f.record.WithDaysUsed(days)
	return f.record, nil
}

func (f *fakeHolidays) SetAllowance(_ context.Context, allowance int) (domain.HolidayRecord, error) {
	f.record = f.record.WithAllowance(allowance)
	return f.record, nil
}

type fakeKSBs struct{}

func (fakeKSBs) Catalog(context.Context) ([]domain.KSBTag, error) {
	return domain.DefaultKSBCatalog(), nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func newTestDriver(t *testing.T, entries *fakeEntries, holidays *fakeHolidays) *teatest.Driver {
	t.Helper()
	app := &App{
		Entries:  entries,
		Holidays: holidays,
		KSBs:     fakeKSBs{},
	}
	d := teatest.New(t, newAppModel(app, config.Default()), teatest.WithSize(100, 40))
	d.DrainInit()
	return d
}

func seededEntries() *fakeEntries {
	return &fakeEntries{entries: []domain.JournalEntry{
		testutil.NewTestEntry("Code review workshop",
			testutil.WithID(1),
			testutil.WithDate(domain.NewDate(2026, time.January, 22)),
			testutil.WithHours(1.5)),
		testutil.NewTestEntry("Reading release notes",
			testutil.WithID(2),
			testutil.WithDate(domain.NewDate(2026, time.January, 20)),
			testutil.WithHours(0.8)),
	}}
}

func defaultHoliday() *fakeHolidays {
	return &fakeHolidays{record: domain.HolidayRecord{
		ID: 1, ApprenticeID: 1, Allowance: domain.DefaultHolidayAllowance,
	}}
}

// ── tests ────────────────────────────────────────────────────────────────────

func TestJournalHome_RendersDashboardAndTimeline(t *testing.T) {
	d := newTestDriver(t, seededEntries(), defaultHoliday())

	view := d.View()
	assert.Contains(t, view, "OFF-THE-JOB PROGRESS")
	assert.Contains(t, view, "TIMELINE")
	assert.Contains(t, view, "Code review workshop")
	assert.Contains(t, view, "Reading release notes")
	// Newest first.
	assert.Less(t,
		strings.Index(view, "Code review workshop"),
		strings.Index(view, "Reading release notes"))
}

func TestJournalHome_LoadFailureIsRecoverable(t *testing.T) {
	entries := seededEntries()
	entries.listErr = errors.New("store offline")
	d := newTestDriver(t, entries, defaultHoliday())

	view := d.View()
	assert.Contains(t, view, "store offline")
	assert.Contains(t, view, "No entries yet")

	// Retry after the store comes back.
	entries.listErr = nil
	d.PressKey('r')
	view = d.View()
	assert.NotContains(t, view, "store offline")
	assert.Contains(t, view, "Code review workshop")
}

func TestHolidayView_ToggleUpdatesDashboard(t *testing.T) {
	d := newTestDriver(t, seededEntries(), defaultHoliday())

	d.PressKey('h')
	view := d.View()
	assert.Contains(t, view, "HOLIDAY SETTINGS")
	assert.Contains(t, view, "0 / 28 days")

	d.PressKey('t')
	view = d.View()
	assert.Contains(t, view, "weekly target paused")
	assert.Contains(t, view, "[holiday]")

	// Back on the journal, the variance readout is suppressed.
	d.PressEsc()
	view = d.View()
	assert.Contains(t, view, "holiday mode")
	assert.NotContains(t, view, "ON TRACK")
	assert.NotContains(t, view, "BEHIND")
}

func TestDeleteFlow_RemovesOnlyTarget(t *testing.T) {
	entries := seededEntries()
	d := newTestDriver(t, entries, defaultHoliday())

	// Cursor starts on the newest entry; delete it after confirming.
	d.PressKey('x')
	assert.Contains(t, d.View(), "Delete")
	d.PressKey('y')
	d.PressEnter()

	require.Equal(t, []int64{1}, entries.deleted)
	view := d.View()
	assert.NotContains(t, view, "Code review workshop")
	assert.Contains(t, view, "Reading release notes")
}

func TestAddEntry_OpensAndCancels(t *testing.T) {
	d := newTestDriver(t, seededEntries(), defaultHoliday())

	d.PressKey('a')
	assert.Contains(t, d.View(), "Title")

	d.PressEsc()
	assert.Contains(t, d.View(), "TIMELINE")
}

func TestQuit(t *testing.T) {
	d := newTestDriver(t, seededEntries(), defaultHoliday())
	d.PressKey('q')
	assert.True(t, d.Quitting)
}
