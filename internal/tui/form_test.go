package tui

import (
	"strings"
	"testing"

	"visibilitystack-cli/internal/model"
	"visibilitystack-cli/internal/nav"
	"visibilitystack-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func TestEntityForm_ResizeMixedFields(t *testing.T) {
	forms := []*entityForm{
		newProfileForm(model.CompanyProfile{Name: "Acme"}),
		newICPForm("New ICP", "", model.ICPTypeEnterprise, ""),
	}
	for _, f := range forms {
		f.resize(80)
		for _, fld := range f.fields {
			if fld.kind == kindLine && fld.input.Width != 76 {
				t.Fatalf("%s: expected input width 76; got %d", fld.key, fld.input.Width)
			}
		}
		if out := f.view(80); !strings.Contains(out, f.title) {
			t.Fatalf("expected form title in view")
		}
	}
}

func newSeededApp(t *testing.T, seed model.Snapshot) appModel {
	t.Helper()
	st, err := store.New(seed)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	m := newAppModel(Options{Nav: nav.New(), Store: st})
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return mm.(appModel)
}

func TestBusinessContext_LongDescriptionSurvivesEdit(t *testing.T) {
	lines := make([]string, 150)
	for i := range lines {
		lines[i] = "line"
	}
	desc := strings.Join(lines, "\n")
	m := newSeededApp(t, model.Snapshot{Profile: model.CompanyProfile{Name: "Acme", Description: desc}})

	// Name, website, description; the textarea cursor starts at the end.
	m = press(t, m,
		keyRunes("e"),
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		keyRunes("x"),
		tea.KeyMsg{Type: tea.KeyCtrlS},
	)

	got := m.store.Profile().Description
	if n := strings.Count(got, "\n") + 1; n != 150 {
		t.Fatalf("expected 150 lines after save; got %d", n)
	}
	if got != desc+"x" {
		t.Fatalf("expected only the typed character to change")
	}
}

func TestBusinessContext_LongNameStaysEditable(t *testing.T) {
	name := strings.Repeat("n", 250)
	m := newSeededApp(t, model.Snapshot{Profile: model.CompanyProfile{Name: name}})
	m = press(t, m, keyRunes("e"), keyRunes("x"), tea.KeyMsg{Type: tea.KeyCtrlS})
	if got := m.store.Profile().Name; got != name+"x" {
		t.Fatalf("expected typed character appended; got %d chars", len(got))
	}
}
