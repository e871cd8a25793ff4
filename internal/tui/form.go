package tui

import (
	"strings"

	"visibilitystack-cli/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fieldKey string

const (
	fieldName        fieldKey = "name"
	fieldWebsite     fieldKey = "website"
	fieldType        fieldKey = "type"
	fieldDescription fieldKey = "description"
)

type fieldKind int

const (
	kindLine fieldKind = iota
	kindArea
	kindChoice
)

type formField struct {
	key    fieldKey
	label  string
	kind   fieldKind
	input  textinput.Model
	area   textarea.Model
	choice model.ICPType
}

func (f formField) value() string {
	switch f.kind {
	case kindArea:
		return f.area.Value()
	case kindChoice:
		return string(f.choice)
	default:
		return f.input.Value()
	}
}

// entityForm is the inline editor shown in place of a card. It only holds
// widget state; every change is reported back as a (field, value) pair and
// the caller forwards it to the owning draft.
type entityForm struct {
	title  string
	fields []formField
	focus  int
	err    string
}

func newLineField(key fieldKey, label, placeholder, value string) formField {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = 0
	in.Width = 40
	in.SetValue(value)
	in.CursorEnd()
	return formField{key: key, label: label, kind: kindLine, input: in}
}

func newAreaField(key fieldKey, label, placeholder, value string) formField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	// Descriptions may come from a seed file of any length.
	ta.MaxHeight = 0
	ta.SetWidth(60)
	ta.SetHeight(4)
	ta.SetValue(value)
	return formField{key: key, label: label, kind: kindArea, area: ta}
}

func newChoiceField(key fieldKey, label string, value model.ICPType) formField {
	return formField{key: key, label: label, kind: kindChoice, choice: value}
}

func newProfileForm(p model.CompanyProfile) *entityForm {
	f := &entityForm{
		title: "Company Profile",
		fields: []formField{
			newLineField(fieldName, "Company Name", "Enter company name", p.Name),
			newLineField(fieldWebsite, "Website", "https://example.com", p.Website),
			newAreaField(fieldDescription, "Description", "Describe what your company does...", p.Description),
		},
	}
	f.focusField(0)
	return f
}

func newICPForm(title string, name string, typ model.ICPType, desc string) *entityForm {
	f := &entityForm{
		title: title,
		fields: []formField{
			newLineField(fieldName, "ICP Name", "e.g., B2B SaaS Companies", name),
			newChoiceField(fieldType, "Company Type", typ),
			newAreaField(fieldDescription, "Description", "Describe the ideal customer profile...", desc),
		},
	}
	f.focusField(0)
	return f
}

func (f *entityForm) focused() *formField { return &f.fields[f.focus] }

func (f *entityForm) focusField(i int) tea.Cmd {
	n := len(f.fields)
	i = ((i % n) + n) % n
	for j := range f.fields {
		f.fields[j].input.Blur()
		f.fields[j].area.Blur()
	}
	f.focus = i
	switch fld := &f.fields[i]; fld.kind {
	case kindLine:
		return fld.input.Focus()
	case kindArea:
		return fld.area.Focus()
	}
	return nil
}

func (f *entityForm) resize(width int) {
	w := max(20, width-4)
	for i := range f.fields {
		switch fld := &f.fields[i]; fld.kind {
		case kindLine:
			fld.input.Width = w
		case kindArea:
			fld.area.SetWidth(w)
		}
	}
}

// update feeds a key to the focused widget. It returns the field that changed
// (empty when nothing did) and its new value.
func (f *entityForm) update(msg tea.KeyMsg, keys keyMap) (fieldKey, string, tea.Cmd) {
	fld := f.focused()
	before := fld.value()

	var cmd tea.Cmd
	switch fld.kind {
	case kindChoice:
		switch {
		case key.Matches(msg, keys.PrevType):
			fld.choice = fld.choice.Prev()
		case key.Matches(msg, keys.NextType):
			fld.choice = fld.choice.Next()
		}
	case kindArea:
		fld.area, cmd = fld.area.Update(msg)
	default:
		fld.input, cmd = fld.input.Update(msg)
	}

	if after := fld.value(); after != before {
		f.err = ""
		return fld.key, after, cmd
	}
	return "", "", cmd
}

func (f *entityForm) view(width int) string {
	labelSt := styleMuted()
	var b strings.Builder
	b.WriteString(styleHeading().Render(f.title))
	b.WriteString("\n")
	for i, fld := range f.fields {
		focused := i == f.focus
		label := fld.label
		if focused {
			label = lipgloss.NewStyle().Foreground(colorAccent).Render(glyphCursor() + " " + label)
		} else {
			label = labelSt.Render("  " + label)
		}
		b.WriteString("\n" + label + "\n")

		var body string
		switch fld.kind {
		case kindChoice:
			body = renderTypeChoice(fld.choice, focused)
		case kindArea:
			body = fld.area.View()
		default:
			body = fld.input.View()
		}
		border := colorInputBorder
		if focused {
			border = colorInputFocus
		}
		b.WriteString(lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(border).
			PaddingLeft(1).
			Render(body))
		b.WriteString("\n")
	}
	if f.err != "" {
		b.WriteString("\n" + styleError().Render(f.err) + "\n")
	}
	b.WriteString("\n" + styleMuted().Render("ctrl+s: save   esc: cancel   tab/shift+tab: field"))
	return styleCard(true).Width(max(24, width-2)).Render(b.String())
}

func renderTypeChoice(cur model.ICPType, focused bool) string {
	var parts []string
	for _, t := range model.ICPTypes() {
		if t == cur {
			parts = append(parts, lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Padding(0, 1).Render(string(t)))
			continue
		}
		parts = append(parts, styleMuted().Padding(0, 1).Render(string(t)))
	}
	row := strings.Join(parts, " ")
	if focused {
		row = glyphPrev() + " " + row + " " + glyphNext()
	}
	return row
}
