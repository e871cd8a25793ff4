package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuAction int

const (
	menuNone menuAction = iota
	menuSettings
	menuSignOut
)

func (a menuAction) label() string {
	switch a {
	case menuSettings:
		return "Settings"
	case menuSignOut:
		return "Sign Out"
	default:
		return ""
	}
}

var menuActions = []menuAction{menuSettings, menuSignOut}

// accountMenu is the dropdown opened from the header's account button.
type accountMenu struct {
	open   bool
	cursor int
}

func (m accountMenu) update(msg tea.KeyMsg, keys keyMap) (accountMenu, menuAction) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(menuActions)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Menu):
		m.open = false
	case key.Matches(msg, keys.Select):
		m.open = false
		return m, menuActions[m.cursor]
	}
	return m, menuNone
}

func (m accountMenu) view() string {
	var rows []string
	for i, a := range menuActions {
		st := lipgloss.NewStyle().Padding(0, 1).Width(16)
		if i == m.cursor {
			st = st.Background(colorSelectedBg).Foreground(colorAccent).Bold(true)
		}
		rows = append(rows, st.Render(a.label()))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Render(strings.Join(rows, "\n"))
}

func renderHeader(email string, menuOpen bool, width int) string {
	btn := email + " " + glyphDropdown()
	st := lipgloss.NewStyle().Foreground(colorText).Padding(0, 1)
	if menuOpen {
		st = st.Foreground(colorAccent).Bold(true)
	}
	right := st.Render(btn)
	return lipgloss.NewStyle().
		Width(max(1, width)).
		Align(lipgloss.Right).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(colorBorder).
		Render(right)
}
