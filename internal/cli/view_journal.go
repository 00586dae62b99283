package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ellieharper/otj/internal/cli/formatter"
	"github.com/ellieharper/otj/internal/domain"
	"github.com/ellieharper/otj/internal/journal"
)

// ── messages ─────────────────────────────────────────────────────────────────

// journalLoadedMsg signals that the entry list, holiday record and KSB
// catalog have been loaded.
type journalLoadedMsg struct {
	entries []domain.JournalEntry
	holiday domain.HolidayRecord
	catalog []domain.KSBTag
	err     error
}

// entriesCreatedMsg carries the result of a create submission (one entry,
// or the whole batch of a multi-date submission).
type entriesCreatedMsg struct {
	created []domain.JournalEntry
	err     error
}

// entryUpdatedMsg carries the result of an edit submission.
type entryUpdatedMsg struct {
	entry domain.JournalEntry
	err   error
}

// entryDeletedMsg carries the result of a delete.
type entryDeletedMsg struct {
	id  int64
	err error
}

// holidayChangedMsg carries a persisted holiday record change.
type holidayChangedMsg struct {
	record domain.HolidayRecord
	err    error
}

// ── view ─────────────────────────────────────────────────────────────────────

// journalView is the home screen of the TUI: progress cards on top, the
// entry timeline below, with a cursor for selecting entries.
type journalView struct {
	state   *SharedState
	spinner spinner.Model

	cursor     int
	showDetail bool
}

func newJournalView(state *SharedState) *journalView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	return &journalView{state: state, spinner: sp}
}

func (v *journalView) ID() ViewID    { return ViewJournal }
func (v *journalView) Title() string { return "Journal" }

func (v *journalView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "holiday")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *journalView) Init() tea.Cmd {
	v.state.Journal.BeginLoad()
	return tea.Batch(v.spinner.Tick, v.loadData())
}

// loadData fetches entries, the holiday record and the KSB catalog in one
// command. Entry and holiday failures surface as a recoverable error; a
// missing catalog silently falls back to the built-in set.
func (v *journalView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()

		entries, err := app.Entries.List(ctx)
		if err != nil {
			return journalLoadedMsg{err: err}
		}

		holiday, err := app.Holidays.Load(ctx)
		if err != nil {
			return journalLoadedMsg{err: err}
		}

		catalog, err := app.KSBs.Catalog(ctx)
		if err != nil {
			catalog = domain.DefaultKSBCatalog()
		}

		return journalLoadedMsg{entries: entries, holiday: holiday, catalog: catalog}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *journalView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctl := v.state.Journal

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if ctl.State() == journal.StateLoading || ctl.State() == journal.StateSubmitting {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil

	case journalLoadedMsg:
		ctl.FinishLoad(msg.entries, msg.err)
		if msg.err == nil {
			ctl.SetHolidayMode(msg.holiday.Enabled)
			v.state.Catalog = msg.catalog
		}
		v.clampCursor()
		return v, nil

	case refreshViewMsg:
		ctl.BeginLoad()
		return v, tea.Batch(v.spinner.Tick, v.loadData())

	case entriesCreatedMsg:
		ctl.FinishCreate(msg.created, msg.err)
		v.clampCursor()
		if msg.err != nil {
			return v, flash(formatter.StyleRed.Render(msg.err.Error()))
		}
		noun := "entry"
		if len(msg.created) > 1 {
			noun = fmt.Sprintf("%d entries", len(msg.created))
		}
		return v, flash(formatter.StyleGreen.Render("Saved " + noun + "."))

	case entryUpdatedMsg:
		ctl.FinishUpdate(msg.entry, msg.err)
		if msg.err != nil {
			return v, flash(formatter.StyleRed.Render(msg.err.Error()))
		}
		return v, flash(formatter.StyleGreen.Render("Entry updated."))

	case entryDeletedMsg:
		ctl.FinishDelete(msg.id, msg.err)
		v.clampCursor()
		if msg.err != nil {
			return v, flash(formatter.StyleRed.Render(msg.err.Error()))
		}
		return v, flash(formatter.Dim("Entry deleted."))

	case holidayChangedMsg:
		if msg.err != nil {
			return v, flash(formatter.StyleRed.Render(msg.err.Error()))
		}
		// Progress recomputes from cached entries; no reload needed.
		ctl.SetHolidayMode(msg.record.Enabled)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *journalView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctl := v.state.Journal
	entries := ctl.Entries()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(entries)-1 {
			v.cursor++
		}
	case "enter":
		if len(entries) > 0 {
			v.showDetail = !v.showDetail
		}
	case "r":
		ctl.BeginLoad()
		return v, tea.Batch(v.spinner.Tick, v.loadData())
	case "h":
		return v, pushView(newHolidayView(v.state))
	case "a":
		if ctl.State() != journal.StateReady {
			return v, nil
		}
		return v, pushView(newEntryFormView(v.state, nil))
	case "e":
		if ctl.State() != journal.StateReady || v.cursor >= len(entries) {
			return v, nil
		}
		target := entries[v.cursor]
		return v, pushView(newEntryFormView(v.state, &target))
	case "x":
		if ctl.State() != journal.StateReady || v.cursor >= len(entries) {
			return v, nil
		}
		return v, v.confirmDelete(entries[v.cursor])
	}
	return v, nil
}

// confirmDelete pushes a yes/no wizard and deletes the entry on confirm.
func (v *journalView) confirmDelete(target domain.JournalEntry) tea.Cmd {
	confirmed := false
	form := wizardConfirm(fmt.Sprintf("Delete %q (%s)?", target.Title, target.Date), &confirmed)

	state := v.state
	done := func() tea.Cmd {
		if !confirmed {
			return nil
		}
		if !state.Journal.BeginSubmit() {
			return nil
		}
		return func() tea.Msg {
			err := state.App.Entries.Delete(context.Background(), target.ID)
			return entryDeletedMsg{id: target.ID, err: err}
		}
	}

	return pushView(newWizardView(state, "Delete Entry", form, done))
}

func (v *journalView) clampCursor() {
	n := len(v.state.Journal.Entries())
	if v.cursor >= n {
		v.cursor = max(0, n-1)
	}
	if n == 0 {
		v.showDetail = false
	}
}

// ── view ─────────────────────────────────────────────────────────────────────

func (v *journalView) View() string {
	ctl := v.state.Journal

	if ctl.State() == journal.StateLoading {
		return "\n  " + v.spinner.View() + formatter.Dim(" loading journal…")
	}

	var b strings.Builder

	b.WriteString(formatter.FormatDashboard(ctl.Snapshot(), v.state.Cfg.Targets(), ctl.HolidayEnabled()))
	b.WriteString("\n")

	if err := ctl.Err(); err != nil {
		b.WriteString("  " + formatter.StyleRed.Render(err.Error()) + "\n\n")
	}

	if ctl.State() == journal.StateSubmitting {
		b.WriteString("  " + v.spinner.View() + formatter.Dim(" saving…") + "\n\n")
	}

	entries := ctl.Entries()
	if len(entries) == 0 {
		b.WriteString("  " + formatter.Dim("No entries yet. Press 'a' to log your first activity.") + "\n")
		return b.String()
	}

	b.WriteString(formatter.Header("Timeline") + "\n")
	for i, e := range entries {
		b.WriteString(formatter.FormatEntryLine(e, i == v.cursor) + "\n")
	}

	if v.showDetail && v.cursor < len(entries) {
		b.WriteString("\n" + formatter.FormatEntryDetail(entries[v.cursor]))
	}

	return b.String()
}
