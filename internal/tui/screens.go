package tui

import (
	"visibilitystack-cli/internal/nav"

	"github.com/charmbracelet/lipgloss"
)

// placeholderText is the static body of screens that have no behavior yet.
func placeholderText(s nav.Screen) string {
	switch s {
	case nav.VisibilityScore:
		return "Visibility Score dashboard coming soon..."
	case nav.Citations:
		return "Citation analysis dashboard coming soon..."
	case nav.Recommendations:
		return "AI-powered recommendations coming soon..."
	case nav.Settings:
		return "Account settings and preferences coming soon..."
	default:
		return ""
	}
}

func renderPlaceholder(s nav.Screen, width int) string {
	title := styleHeading().Render(s.Label())
	body := styleMuted().Render(placeholderText(s))
	return title + "\n\n" + lipgloss.NewStyle().Width(max(10, width-2)).Render(body)
}
