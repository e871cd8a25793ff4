package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// rowItem is implemented by list items rendered as one line by
// compactItemDelegate. The badge is right-aligned.
type rowItem interface {
	list.Item
	Row() (text string, badge string, warn bool)
}

type compactItemDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
}

func newCompactItemDelegate() compactItemDelegate {
	return compactItemDelegate{
		normal:   lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().Background(colorSelectedBg).Bold(true),
	}
}

func (d compactItemDelegate) Height() int                             { return 1 }
func (d compactItemDelegate) Spacing() int                            { return 0 }
func (d compactItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d compactItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		return
	}

	text, badge, warn := fmt.Sprint(item), "", false
	if r, ok := item.(rowItem); ok {
		text, badge, warn = r.Row()
	}

	prefix := "  "
	style := d.normal
	if index == m.Index() {
		prefix = glyphCursor() + " "
		style = d.selected
	}

	b := ""
	if badge != "" {
		b = styleBadge(warn).Render(badge)
	}
	left := fitWidth(prefix+text, max(0, contentW-lipgloss.Width(b)))
	fmt.Fprint(w, style.Render(left)+b)
}
