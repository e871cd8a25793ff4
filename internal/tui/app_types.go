package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type focusZone int

const (
	focusMain focusZone = iota
	focusSidebar
)

const flashDuration = 2 * time.Second

type flashDoneMsg struct{ seq int }

func flashAfter(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}
