package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ellieharper/otj/internal/domain"
	"github.com/ellieharper/otj/internal/progress"
)

// FormatHours renders a float-hour figure with at most one decimal place,
// e.g. 1.5 -> "1.5h", 3.0 -> "3h".
func FormatHours(hours float64) string {
	s := strconv.FormatFloat(hours, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return s + "h"
}

// FormatEntryLine renders a single timeline row: date, hours, OTJ marker,
// title and category.
func FormatEntryLine(e domain.JournalEntry, selected bool) string {
	marker := StyleDim.Render("·")
	if e.IsOffTheJob {
		marker = StyleGreen.Render("●")
	}

	cursor := "  "
	if selected {
		cursor = StyleHeader.Render("❯ ")
	}

	hours := StyleBlue.Render(fmt.Sprintf("%6s", FormatHours(e.TotalHours)))
	date := StyleDim.Render(e.Date.String())
	title := e.Title
	if selected {
		title = StyleBold.Render(title)
	} else {
		title = StyleFg.Render(title)
	}

	line := fmt.Sprintf("%s%s  %s %s  %s  %s", cursor, date, marker, hours, title, StyleDim.Render(e.Category))
	if len(e.KSBs) > 0 {
		ids := make([]string, len(e.KSBs))
		for i, k := range e.KSBs {
			ids[i] = k.ID
		}
		line += "  " + StylePurple.Render("["+strings.Join(ids, " ")+"]")
	}
	if len(e.Documents) > 0 {
		line += "  " + StyleDim.Render(fmt.Sprintf("(%d att)", len(e.Documents)))
	}
	return line
}

// FormatEntryDetail renders the expanded card for a single entry.
func FormatEntryDetail(e domain.JournalEntry) string {
	var b strings.Builder

	b.WriteString(Header(e.Title) + "\n")
	b.WriteString(fmt.Sprintf("  %s %s", Dim("Date:"), e.Date.String()))
	if e.StartTime != "" && e.EndTime != "" {
		b.WriteString(Dim("  ") + fmt.Sprintf("%s–%s", e.StartTime, e.EndTime))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s", Dim("Hours:"), StyleBlue.Render(FormatHours(e.TotalHours))))
	if e.IsOffTheJob {
		b.WriteString("  " + StyleGreen.Render("off-the-job"))
	} else {
		b.WriteString("  " + Dim("on-the-job"))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Category:"), e.Category))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Notes:"), e.Description))

	if len(e.KSBs) > 0 {
		b.WriteString("  " + Dim("KSBs:") + "\n")
		for _, k := range e.KSBs {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				StylePurple.Render(k.ID), Dim(string(k.Type)), k.Description))
		}
	}
	if len(e.Documents) > 0 {
		b.WriteString("  " + Dim("Attachments:") + "\n")
		for _, d := range e.Documents {
			b.WriteString(fmt.Sprintf("    %s %s\n", d.Name, Dim(domain.FormatFileSize(d.Size))))
		}
	}
	return b.String()
}

// FormatDashboard renders the progress summary cards shown above the timeline.
func FormatDashboard(snap progress.Snapshot, targets progress.Targets, holidayEnabled bool) string {
	var b strings.Builder

	b.WriteString(Header("Off-the-Job Progress") + "\n")

	weekLine := fmt.Sprintf("  %s %s / %s",
		Dim("This week:"),
		StyleBlue.Render(FormatHours(snap.CurrentWeekOTJHours)),
		FormatHours(targets.WeeklyHours))
	if holidayEnabled {
		weekLine += "  " + StyleYellow.Render("⏸ holiday mode")
	} else {
		variance := FormatHours(snap.Variance)
		if snap.Variance >= 0 {
			variance = "+" + variance
		}
		weekLine += "  " + VarianceIndicator(snap.Variance)
		weekLine += "  " + VarianceStyle(snap.Variance).Render("("+variance+")")
	}
	b.WriteString(weekLine + "\n")

	b.WriteString(fmt.Sprintf("  %s %s  %s\n",
		Dim("Annual:   "),
		RenderProgress(snap.PercentageComplete/100, 24),
		Dim(fmt.Sprintf("%s logged, %s remaining",
			FormatHours(snap.TotalOTJHours), FormatHours(snap.HoursRemaining)))))

	b.WriteString(fmt.Sprintf("  %s %d entries, %d off-the-job\n",
		Dim("Journal:  "), snap.EntryCount, snap.OTJEntryCount))

	return b.String()
}

// FormatHolidayCard renders the holiday settings panel.
func FormatHolidayCard(r domain.HolidayRecord) string {
	var b strings.Builder

	b.WriteString(Header("Holiday Settings") + "\n")

	mode := StyleDim.Render("off")
	if r.Enabled {
		mode = StyleYellow.Render("ON — weekly target paused")
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Holiday mode:"), mode))
	b.WriteString(fmt.Sprintf("  %s %d / %d days  %s\n",
		Dim("Days used:   "), r.DaysUsed, r.Allowance,
		RenderProgress(r.PercentUsed()/100, 16)))
	b.WriteString(fmt.Sprintf("  %s %d days\n", Dim("Remaining:   "), r.Remaining()))

	return b.String()
}
