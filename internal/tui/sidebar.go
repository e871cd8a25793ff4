package tui

import (
	"strings"

	"visibilitystack-cli/internal/nav"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 26

// sidebar renders the left-hand screen navigation. The cursor is independent
// of the current screen until enter is pressed.
type sidebar struct {
	screens []nav.Screen
	cursor  int
	focused bool
	height  int
}

func newSidebar(current nav.Screen) sidebar {
	s := sidebar{screens: nav.SidebarScreens()}
	s.syncCursor(current)
	return s
}

// syncCursor moves the cursor onto the given screen when it is listed.
func (s *sidebar) syncCursor(current nav.Screen) {
	for i, sc := range s.screens {
		if sc == current {
			s.cursor = i
			return
		}
	}
}

func (s sidebar) selected() nav.Screen {
	if s.cursor < 0 || s.cursor >= len(s.screens) {
		return nav.DefaultScreen
	}
	return s.screens[s.cursor]
}

// update moves the cursor. It reports the screen to open when the user
// confirms a row.
func (s sidebar) update(msg tea.KeyMsg, keys keyMap) (sidebar, nav.Screen, bool) {
	switch {
	case key.Matches(msg, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(msg, keys.Down):
		if s.cursor < len(s.screens)-1 {
			s.cursor++
		}
	case key.Matches(msg, keys.Select):
		return s, s.selected(), true
	}
	return s, "", false
}

func (s sidebar) view(current nav.Screen) string {
	rowW := sidebarWidth - 2
	brand := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1).Render("VisibilityStack")
	lines := []string{brand, ""}

	for i, sc := range s.screens {
		label := fitWidth(sc.Label(), rowW-2)
		st := lipgloss.NewStyle().Width(rowW).PaddingLeft(1)
		prefix := " "
		switch {
		case sc == current:
			prefix = glyphActive()
			st = st.Foreground(colorAccent).Background(colorSelectedBg).Bold(true)
		default:
			st = st.Foreground(colorText)
		}
		if s.focused && i == s.cursor {
			prefix = glyphCursor()
			st = st.Underline(true)
		}
		lines = append(lines, st.Render(prefix+" "+label))
	}

	for len(lines) < s.height {
		lines = append(lines, "")
	}

	border := colorBorder
	if s.focused {
		border = colorAccent
	}
	return lipgloss.NewStyle().
		Width(rowW).
		Height(max(1, s.height)).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(border).
		Render(strings.Join(lines, "\n"))
}
