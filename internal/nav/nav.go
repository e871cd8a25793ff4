// Package nav holds the process-wide screen selection.
//
// There is exactly one Controller per running app. Every view that needs the
// current screen (sidebar highlight, main panel) reads it from the same
// *Controller; only user actions call SetFlow.
package nav

import (
	"errors"
	"fmt"
	"strings"
)

type Screen string

const (
	VisibilityScore Screen = "visibilityScore"
	Citations       Screen = "citations"
	Recommendations Screen = "recommendations"
	BusinessContext Screen = "businessContext"
	Settings        Screen = "settings"

	DefaultScreen = BusinessContext
)

const invalidScreenFmt = "%w: %q"

var ErrInvalidScreenID = errors.New("invalid screen id")

// Screens returns every screen identifier.
func Screens() []Screen {
	return []Screen{VisibilityScore, Citations, Recommendations, BusinessContext, Settings}
}

func (s Screen) Valid() bool {
	for _, v := range Screens() {
		if v == s {
			return true
		}
	}
	return false
}

func (s Screen) Label() string {
	switch s {
	case VisibilityScore:
		return "Visibility Score"
	case Citations:
		return "Citations"
	case Recommendations:
		return "Recommendations"
	case BusinessContext:
		return "Business Context"
	case Settings:
		return "Settings"
	default:
		return string(s)
	}
}

// SidebarScreens lists the screens shown in the sidebar, in display order.
// Settings is only reachable from the account menu.
func SidebarScreens() []Screen {
	return []Screen{VisibilityScore, Citations, Recommendations, BusinessContext}
}

// ParseScreen maps an external identifier to a Screen. Matching is
// case-insensitive and also accepts kebab/snake spellings
// ("business-context", "visibility_score").
func ParseScreen(s string) (Screen, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.TrimSpace(s)))
	for _, v := range Screens() {
		if strings.ToLower(string(v)) == norm {
			return v, nil
		}
	}
	return "", fmt.Errorf(invalidScreenFmt, ErrInvalidScreenID, s)
}

// ChangeFunc observes screen changes. It is called after the value is updated.
type ChangeFunc func(from, to Screen)

type Controller struct {
	current  Screen
	onChange []ChangeFunc
}

// New returns a controller on the default screen.
func New() *Controller {
	return &Controller{current: DefaultScreen}
}

// NewAt returns a controller on start, which must be a valid screen.
func NewAt(start Screen) (*Controller, error) {
	c := New()
	if err := c.SetFlow(start); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Controller) Current() Screen { return c.current }

// SetFlow selects the current screen. Identifiers outside Screens() are
// rejected with ErrInvalidScreenID and leave the selection unchanged.
func (c *Controller) SetFlow(s Screen) error {
	if !s.Valid() {
		return fmt.Errorf(invalidScreenFmt, ErrInvalidScreenID, string(s))
	}
	prev := c.current
	c.current = s
	if prev != s {
		for _, fn := range c.onChange {
			fn(prev, s)
		}
	}
	return nil
}

// OnChange registers fn to run whenever SetFlow moves to a different screen.
func (c *Controller) OnChange(fn ChangeFunc) {
	if fn != nil {
		c.onChange = append(c.onChange, fn)
	}
}
