package tui

import (
	"visibilitystack-cli/internal/nav"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	mainW := m.mainWidth()
	mainH := m.mainHeight()

	var body string
	switch cur := m.nav.Current(); cur {
	case nav.BusinessContext:
		if m.business != nil {
			body = m.business.view(mainW, mainH)
		}
	default:
		body = renderPlaceholder(cur, mainW)
	}
	body = normalizePane(lipgloss.NewStyle().PaddingLeft(1).Render(body), mainW, mainH)

	header := renderHeader(m.accountEmail, m.menu.open, mainW)
	if m.menu.open {
		menu := m.menu.view()
		body = lipgloss.PlaceHorizontal(mainW, lipgloss.Right, menu) + "\n" + body
		body = normalizePane(body, mainW, mainH)
	}

	main := lipgloss.JoinVertical(lipgloss.Left, header, body, m.footer(mainW))
	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.view(m.nav.Current()), main)
}

func (m appModel) footer(width int) string {
	if m.minibufferText != "" {
		return fitWidth(styleSuccess().Render(m.minibufferText), width)
	}
	return fitWidth(m.help.ShortHelpView(m.contextKeys()), width)
}

// contextKeys lists the bindings that act in the current state.
func (m appModel) contextKeys() []key.Binding {
	k := m.keys
	switch {
	case m.menu.open:
		return []key.Binding{k.Up, k.Down, k.Select, k.Back}
	case m.focus == focusSidebar:
		return []key.Binding{k.Up, k.Down, k.Select, k.Focus, k.Quit}
	case m.business != nil && m.business.editing():
		bs := []key.Binding{k.NextField, k.PrevField, k.Save, k.Cancel}
		if f := m.business.form.focused(); f.kind == kindChoice {
			bs = append(bs, k.NextType)
		}
		return bs
	case m.business != nil:
		switch m.business.tab {
		case tabICPs:
			return []key.Binding{k.PrevTab, k.NextTab, k.Up, k.Down, k.Edit, k.Delete, k.Add, k.Menu, k.Quit}
		case tabCompetitors:
			return []key.Binding{k.PrevTab, k.NextTab, k.Up, k.Down, k.Menu, k.Quit}
		default:
			return []key.Binding{k.PrevTab, k.NextTab, k.Edit, k.Menu, k.Quit}
		}
	}
	return []key.Binding{k.Focus, k.Menu, k.Quit}
}
