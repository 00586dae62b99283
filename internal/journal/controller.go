package journal

import (
	"sort"
	"time"

	"github.com/ellieharper/otj/internal/domain"
	"github.com/ellieharper/otj/internal/progress"
)

// State is the controller's position in its lifecycle.
type State int

const (
	StateLoading State = iota
	StateReady
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSubmitting:
		return "submitting"
	default:
		return "ready"
	}
}

// Controller owns the in-memory entry collection and its derived progress
// snapshot. It is a synchronous state machine: the caller performs the
// actual store calls and feeds results back through the Finish methods.
// States move Loading → Ready once, then Ready ⇄ Submitting around each
// mutation in flight.
type Controller struct {
	state          State
	entries        []domain.JournalEntry
	err            error
	targets        progress.Targets
	holidayEnabled bool
	snapshot       progress.Snapshot
	now            func() time.Time
}

func NewController(targets progress.Targets, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	c := &Controller{
		state:   StateLoading,
		targets: targets,
		now:     now,
	}
	c.refresh()
	return c
}

func (c *Controller) State() State                { return c.state }
func (c *Controller) Err() error                  { return c.err }
func (c *Controller) Snapshot() progress.Snapshot { return c.snapshot }
func (c *Controller) HolidayEnabled() bool        { return c.holidayEnabled }

// Entries returns the collection, most recent date first.
func (c *Controller) Entries() []domain.JournalEntry {
	out := make([]domain.JournalEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Find returns the entry with the given id.
func (c *Controller) Find(id int64) (domain.JournalEntry, bool) {
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return domain.JournalEntry{}, false
}

// ClearError dismisses the last recoverable error.
func (c *Controller) ClearError() { c.err = nil }

// BeginLoad moves back into Loading for a full refetch.
func (c *Controller) BeginLoad() {
	c.state = StateLoading
	c.err = nil
}

// FinishLoad installs the fetched collection. A fetch failure still lands
// in Ready: the error is recoverable, the collection treated as empty.
func (c *Controller) FinishLoad(entries []domain.JournalEntry, err error) {
	c.state = StateReady
	if err != nil {
		c.err = err
		c.entries = nil
		c.refresh()
		return
	}
	c.err = nil
	c.entries = make([]domain.JournalEntry, len(entries))
	copy(c.entries, entries)
	c.sortEntries()
	c.refresh()
}

// BeginSubmit marks a mutation in flight. Returns false when the controller
// is not Ready; a second submission is not started while one is pending.
func (c *Controller) BeginSubmit() bool {
	if c.state != StateReady {
		return false
	}
	c.state = StateSubmitting
	c.err = nil
	return true
}

// FinishCreate merges newly persisted entries into the collection. On error
// nothing is merged — for a multi-date batch this means no partial set ever
// lands, even if some individual calls succeeded.
func (c *Controller) FinishCreate(created []domain.JournalEntry, err error) {
	c.state = StateReady
	if err != nil {
		c.err = err
		return
	}
	c.entries = append(c.entries, created...)
	c.sortEntries()
	c.refresh()
}

// FinishUpdate replaces the matching entry in place and re-sorts.
func (c *Controller) FinishUpdate(updated domain.JournalEntry, err error) {
	c.state = StateReady
	if err != nil {
		c.err = err
		return
	}
	for i, e := range c.entries {
		if e.ID == updated.ID {
			c.entries[i] = updated
			break
		}
	}
	c.sortEntries()
	c.refresh()
}

// FinishDelete removes the entry with the given id. On error the collection
// is left untouched.
func (c *Controller) FinishDelete(id int64, err error) {
	c.state = StateReady
	if err != nil {
		c.err = err
		return
	}
	for i, e := range c.entries {
		if e.ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			break
		}
	}
	c.refresh()
}

// SetHolidayMode switches weekly-variance suppression and recomputes the
// snapshot, so the display updates without a reload.
func (c *Controller) SetHolidayMode(enabled bool) {
	c.holidayEnabled = enabled
	c.refresh()
}

// sortEntries orders most recent date first. The sort is stable so entries
// sharing a date keep their fetch/insertion order.
func (c *Controller) sortEntries() {
	sort.SliceStable(c.entries, func(i, j int) bool {
		return c.entries[j].Date.Before(c.entries[i].Date)
	})
}

func (c *Controller) refresh() {
	c.snapshot = progress.Compute(c.entries, c.targets, c.holidayEnabled, c.now())
}
