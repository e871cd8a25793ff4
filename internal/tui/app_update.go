package tui

import (
	"visibilitystack-cli/internal/nav"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeMain()
		return m, nil

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.minibufferText = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.menu.open {
		var action menuAction
		m.menu, action = m.menu.update(msg, m.keys)
		switch action {
		case menuSettings:
			m.setFlow(nav.Settings)
		case menuSignOut:
			m.log.Info("sign out requested", zap.String("account", m.accountEmail))
			cmd := m.flash("Signed out")
			return m, cmd
		}
		return m, nil
	}

	// A form owns every key, including q and tab.
	if m.business != nil && m.business.editing() {
		cmd := m.updateBusiness(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.toggleFocus()
		return m, nil
	case key.Matches(msg, m.keys.Menu):
		m.menu = accountMenu{open: true}
		return m, nil
	}

	if m.focus == focusSidebar {
		var (
			target nav.Screen
			ok     bool
		)
		m.sidebar, target, ok = m.sidebar.update(msg, m.keys)
		if ok {
			m.setFlow(target)
			m.toggleFocus()
		}
		return m, nil
	}

	if m.business != nil {
		cmd := m.updateBusiness(msg)
		return m, cmd
	}
	return m, nil
}

func (m *appModel) updateBusiness(msg tea.KeyMsg) tea.Cmd {
	cmd := m.business.update(msg)
	return tea.Batch(cmd, m.flash(m.business.takeNotice()))
}

func (m *appModel) toggleFocus() {
	if m.focus == focusSidebar {
		m.focus = focusMain
	} else {
		m.focus = focusSidebar
		m.sidebar.syncCursor(m.nav.Current())
	}
	m.sidebar.focused = m.focus == focusSidebar
}

// flash shows text in the minibuffer until the next flash or a timeout.
func (m *appModel) flash(text string) tea.Cmd {
	if text == "" {
		return nil
	}
	m.minibufferText = text
	m.flashSeq++
	return flashAfter(m.flashSeq)
}
