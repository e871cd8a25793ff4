package tui

import (
	"os"
	"strings"
	"sync"
)

// Some terminal fonts render box/arrow glyphs poorly; VSTACK_TUI_GLYPHS=ascii
// swaps them for plain ASCII.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("VSTACK_TUI_GLYPHS"))) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	defer glyphsMu.RUnlock()
	return currentGlyphs
}

func pick(unicode, ascii string) string {
	if glyphs() == glyphSetASCII {
		return ascii
	}
	return unicode
}

func glyphActive() string   { return pick("▍", "|") }
func glyphCursor() string   { return pick("›", ">") }
func glyphDropdown() string { return pick("▾", "v") }
func glyphPrev() string     { return pick("◀", "<") }
func glyphNext() string     { return pick("▶", ">") }
func glyphHRule() string    { return pick("─", "-") }
func glyphBullet() string   { return pick("•", "*") }
