package cli

import (
	"time"

	"github.com/ellieharper/otj/internal/config"
	"github.com/ellieharper/otj/internal/domain"
	"github.com/ellieharper/otj/internal/journal"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App
	Cfg config.Config

	// Journal is the single source of truth for entries, progress and
	// submission state. Every view reads from it; only message handlers
	// in the journal view mutate it.
	Journal *journal.Controller

	// Categories and KSB catalog, loaded once at startup.
	Categories []domain.Category
	Catalog    []domain.KSBTag

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App, cfg config.Config) *SharedState {
	return &SharedState{
		App:        app,
		Cfg:        cfg,
		Journal:    journal.NewController(cfg.Targets(), time.Now),
		Categories: domain.DefaultCategories(),
	}
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
