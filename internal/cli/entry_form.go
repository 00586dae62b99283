package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/ellieharper/otj/internal/cli/formatter"
	"github.com/ellieharper/otj/internal/domain"
	"github.com/ellieharper/otj/internal/journal"
)

// newEntryFormView builds the add/edit wizard. A nil existing entry means
// create mode, which also offers multi-date fan-out; editing always targets
// the single record.
func newEntryFormView(state *SharedState, existing *domain.JournalEntry) View {
	editing := existing != nil

	var (
		title       string
		category    string
		description string
		date        string
		extraDates  string
		startTime   string
		endTime     string
		offTheJob   = true
		ksbIDs      []string
		docPaths    string
	)

	if editing {
		title = existing.Title
		category = existing.Category
		description = existing.Description
		date = existing.Date.String()
		startTime = existing.StartTime
		endTime = existing.EndTime
		offTheJob = existing.IsOffTheJob
		for _, k := range existing.KSBs {
			ksbIDs = append(ksbIDs, k.ID)
		}
	} else if len(state.Categories) > 0 {
		category = state.Categories[0].Name
	}

	categoryOptions := make([]huh.Option[string], 0, len(state.Categories))
	for _, c := range state.Categories {
		categoryOptions = append(categoryOptions, huh.NewOption(c.Name, c.Name))
	}

	catalog := state.Catalog
	if len(catalog) == 0 {
		catalog = domain.DefaultKSBCatalog()
	}
	ksbOptions := make([]huh.Option[string], 0, len(catalog))
	for _, k := range catalog {
		label := fmt.Sprintf("%s — %s", k.ID, k.Description)
		ksbOptions = append(ksbOptions, huh.NewOption(label, k.ID))
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("What did you do?").
				Value(&title).
				Validate(validateRequired("title")),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&category),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Placeholder("2026-01-22").
				Value(&date).
				Validate(validateDate),
		),
	}

	if !editing {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Repeat on (optional, comma-separated dates)").
				Placeholder("2026-01-23, 2026-01-24").
				Value(&extraDates).
				Validate(validateDateList),
		))
	}

	groups = append(groups,
		huh.NewGroup(
			huh.NewInput().
				Title("Start time (optional)").
				Placeholder("09:00").
				Value(&startTime).
				Validate(validateClockField),
			huh.NewInput().
				Title("End time (optional)").
				Placeholder("10:30").
				Value(&endTime).
				Validate(validateClockField),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Notes (optional)").
				Value(&description),
			huh.NewConfirm().
				Title("Counts as off-the-job training?").
				Affirmative("Yes").
				Negative("No").
				Value(&offTheJob),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("KSBs evidenced").
				Options(ksbOptions...).
				Value(&ksbIDs),
			huh.NewInput().
				Title("Attachments (optional, comma-separated paths)").
				Value(&docPaths),
		),
	)

	form := huh.NewForm(groups...).WithTheme(otjHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		parsedDate, err := domain.ParseDate(date)
		if err != nil {
			return flash(formatter.StyleRed.Render("invalid date"))
		}

		data := journal.FormData{
			Title:       title,
			Category:    category,
			Description: strings.TrimSpace(description),
			Date:        parsedDate,
			StartTime:   startTime,
			EndTime:     endTime,
			IsOffTheJob: offTheJob,
			KSBs:        resolveKSBs(catalog, ksbIDs),
			Documents:   collectDocuments(docPaths),
		}

		if !editing && strings.TrimSpace(extraDates) != "" {
			data.MultiDate = true
			data.Dates.Add(parsedDate)
			for _, d := range parseDateList(extraDates) {
				data.Dates.Add(d)
			}
		}

		payloads, err := journal.Materialize(data, state.Categories)
		if err != nil {
			return flash(formatter.StyleRed.Render(err.Error()))
		}

		if !state.Journal.BeginSubmit() {
			return flash(formatter.StyleRed.Render("journal is busy, try again"))
		}

		if editing {
			id := existing.ID
			return func() tea.Msg {
				updated, err := state.App.Entries.Update(context.Background(), id, payloads[0])
				return entryUpdatedMsg{entry: updated, err: err}
			}
		}
		return func() tea.Msg {
			created, err := state.App.Entries.CreateBatch(context.Background(), payloads)
			return entriesCreatedMsg{created: created, err: err}
		}
	}

	formTitle := "New Entry"
	if editing {
		formTitle = "Edit Entry"
	}
	return newWizardView(state, formTitle, form, done)
}

// validateDateList accepts empty or a comma-separated list of YYYY-MM-DD dates.
func validateDateList(s string) error {
	for _, tok := range splitList(s) {
		if err := validateDate(tok); err != nil {
			return fmt.Errorf("%q: use YYYY-MM-DD format", tok)
		}
	}
	return nil
}

// parseDateList parses a comma-separated list, dropping malformed tokens.
// Validation has already run, so drops only happen on direct calls.
func parseDateList(s string) []domain.Date {
	var dates []domain.Date
	for _, tok := range splitList(s) {
		if d, err := domain.ParseDate(tok); err == nil {
			dates = append(dates, d)
		}
	}
	return dates
}

func splitList(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// resolveKSBs maps selected ids back to full catalog tags.
func resolveKSBs(catalog []domain.KSBTag, ids []string) []domain.KSBTag {
	var tags []domain.KSBTag
	for _, id := range ids {
		for _, k := range catalog {
			if k.ID == id {
				tags = append(tags, k)
				break
			}
		}
	}
	return tags
}

// collectDocuments stats each path and builds attachment metadata. Files
// that are missing or of an unsupported type are skipped; the materializer
// filters again on media type as a backstop.
func collectDocuments(paths string) []domain.DocumentMeta {
	var docs []domain.DocumentMeta
	for _, p := range splitList(paths) {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		mediaType, ok := domain.MediaTypeForFile(p)
		if !ok {
			continue
		}
		docs = append(docs, domain.DocumentMeta{
			ID:        uuid.NewString(),
			Name:      filepath.Base(p),
			Size:      info.Size(),
			MediaType: mediaType,
		})
	}
	return docs
}
