package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"paperboard/internal/board"
	"paperboard/internal/model"
	"paperboard/internal/store"
)

// Loader fetches the records for a data source.
type Loader func(ctx context.Context, source string) ([]*model.Paper, error)

type Options struct {
	Source   string
	Settings board.Settings
	// Theme is light, dark or auto; Glyphs is unicode or ascii.
	Theme  string
	Glyphs string
	// Load defaults to store.Load.
	Load Loader
}

func (o Options) loader() Loader {
	if o.Load != nil {
		return o.Load
	}
	return func(ctx context.Context, source string) ([]*model.Paper, error) {
		recs, err := store.Load(ctx, source)
		if err != nil {
			return nil, err
		}
		return recs.All(), nil
	}
}

// Run starts the interactive table. A load failure is shown in the TUI and returned
// once the user quits.
func Run(ctx context.Context, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	m := newAppModel(ctx, opts)
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(appModel); ok && fm.loadErr != nil {
		return fm.loadErr
	}
	return nil
}
