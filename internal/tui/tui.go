package tui

import (
	"errors"

	"visibilitystack-cli/internal/nav"
	"visibilitystack-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Options wires the dashboard to its collaborators. Store is required.
type Options struct {
	Nav          *nav.Controller
	Store        *store.Store
	AccountEmail string
	// Theme is "auto", "light" or "dark".
	Theme  string
	Logger *zap.Logger
}

func Run(opts Options) error {
	if opts.Store == nil {
		return errors.New("tui: store is required")
	}
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference()

	m := newAppModel(opts)
	m.nav.OnChange(func(from, to nav.Screen) {
		m.log.Debug("screen changed", zap.String("from", string(from)), zap.String("to", string(to)))
	})
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
