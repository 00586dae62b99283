package cli

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ellieharper/otj/internal/cli/formatter"
)

// holidayView shows the holiday settings panel and hosts the wizards that
// change them. Every change is persisted through the holiday service and
// reflected in the shared journal controller, so the dashboard underneath
// recomputes without a reload.
type holidayView struct {
	state  *SharedState
	notice string
}

func newHolidayView(state *SharedState) *holidayView {
	return &holidayView{state: state}
}

func (v *holidayView) ID() ViewID    { return ViewHoliday }
func (v *holidayView) Title() string { return "Holiday" }

func (v *holidayView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle holiday mode")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "days used")),
		key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "allowance")),
	}
}

func (v *holidayView) Init() tea.Cmd { return nil }

func (v *holidayView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case holidayChangedMsg:
		if msg.err != nil {
			v.notice = formatter.StyleRed.Render(msg.err.Error())
			return v, nil
		}
		v.notice = ""
		v.state.Journal.SetHolidayMode(msg.record.Enabled)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "t":
			v.notice = ""
			return v, v.toggleMode()
		case "d":
			v.notice = ""
			return v, v.editDaysUsed()
		case "l":
			v.notice = ""
			return v, v.editAllowance()
		}
	}
	return v, nil
}

func (v *holidayView) toggleMode() tea.Cmd {
	state := v.state
	enabled := !state.App.Holidays.Record().Enabled
	return func() tea.Msg {
		record, err := state.App.Holidays.SetEnabled(context.Background(), enabled)
		return holidayChangedMsg{record: record, err: err}
	}
}

func (v *holidayView) editDaysUsed() tea.Cmd {
	state := v.state
	current := state.App.Holidays.Record()

	value := strconv.Itoa(current.DaysUsed)
	form := wizardInputInt("Holiday days used", strconv.Itoa(current.DaysUsed), &value)

	done := func() tea.Cmd {
		days := parseIntOr(value, current.DaysUsed)
		return func() tea.Msg {
			record, err := state.App.Holidays.SetDaysUsed(context.Background(), days)
			return holidayChangedMsg{record: record, err: err}
		}
	}
	return pushView(newWizardView(state, "Days Used", form, done))
}

func (v *holidayView) editAllowance() tea.Cmd {
	state := v.state
	current := state.App.Holidays.Record()

	value := strconv.Itoa(current.Allowance)
	form := wizardInputInt("Annual allowance (days)", strconv.Itoa(current.Allowance), &value)

	done := func() tea.Cmd {
		allowance := parseIntOr(value, current.Allowance)
		return func() tea.Msg {
			record, err := state.App.Holidays.SetAllowance(context.Background(), allowance)
			return holidayChangedMsg{record: record, err: err}
		}
	}
	return pushView(newWizardView(state, "Allowance", form, done))
}

func (v *holidayView) View() string {
	out := formatter.FormatHolidayCard(v.state.App.Holidays.Record())
	if v.notice != "" {
		out += "\n  " + v.notice + "\n"
	}
	return out
}
