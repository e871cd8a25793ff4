package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette.
//
// Adaptive colors keep the dashboard readable on light and dark terminals.
// The accent is the VisibilityStack cyan; faint styling is only applied on
// dark backgrounds because faint text on light terminals is often illegible.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorAccent      lipgloss.TerminalColor = ac("#00A8AA", "#00CED1")
	colorAccentFg    lipgloss.TerminalColor = ac("255", "#0A0A0A")
	colorText        lipgloss.TerminalColor = ac("235", "#FFFFFF")
	colorTextMuted   lipgloss.TerminalColor = ac("240", "#9CA3AF")
	colorBorder      lipgloss.TerminalColor = ac("250", "#262626")
	colorSelectedBg  lipgloss.TerminalColor = ac("#e9e9e9", "#1A1A1A")
	colorSurfaceBg   lipgloss.TerminalColor = ac("255", "#0F0F0F")
	colorWarning     lipgloss.TerminalColor = ac("#B45309", "#F59E0B")
	colorError       lipgloss.TerminalColor = ac("160", "#EF4444")
	colorSuccess     lipgloss.TerminalColor = ac("28", "#10B981")
	colorBadgeBg     lipgloss.TerminalColor = ac("254", "#141414")
	colorInputFocus  lipgloss.TerminalColor = ac("#00A8AA", "#00CED1")
	colorInputBorder lipgloss.TerminalColor = ac("250", "#1A1A1A")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorTextMuted))
}

func styleHeading() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorText)
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError)
}

func styleSuccess() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSuccess)
}

// styleCard is the bordered box used for profile and ICP cards.
func styleCard(selected bool) lipgloss.Style {
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)
	if selected {
		st = st.BorderForeground(colorAccent)
	}
	return st
}

func styleBadge(warn bool) lipgloss.Style {
	fg := colorAccent
	if warn {
		fg = colorWarning
	}
	return lipgloss.NewStyle().Foreground(fg).Background(colorBadgeBg).Padding(0, 1)
}

// applyColorProfilePreference sets Lip Gloss's color profile.
//
// termenv.EnvColorProfile honors CLICOLOR, which can disable colors in a TUI
// by accident. Only NO_COLOR is honored here; otherwise the terminal's
// reported capabilities are used, upgraded when TERM/COLORTERM claim more.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(os.Getenv("TERM"))
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	switch {
	case strings.Contains(colorterm, "truecolor"), strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	case strings.Contains(term, "256color"):
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures background detection from the configured
// theme ("light", "dark" or "auto"). For "auto" the COLORFGBG hint is used
// when present ("fg;bg", last segment is the background).
func applyThemePreference(theme string) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
