package tui

import (
	"errors"
	"fmt"
	"strings"

	"visibilitystack-cli/internal/draft"
	"visibilitystack-cli/internal/model"
	"visibilitystack-cli/internal/store"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type bcTab int

const (
	tabProfile bcTab = iota
	tabICPs
	tabCompetitors
)

var bcTabs = []bcTab{tabProfile, tabICPs, tabCompetitors}

func (t bcTab) String() string {
	switch t {
	case tabICPs:
		return "icps"
	case tabCompetitors:
		return "competitors"
	default:
		return "profile"
	}
}

func (t bcTab) label() string {
	switch t {
	case tabICPs:
		return "Company ICPs"
	case tabCompetitors:
		return "Competitors"
	default:
		return "Company Profile"
	}
}

type formKind int

const (
	formNone formKind = iota
	formProfile
	formEditICP
	formAddICP
)

const noticeCompetitorsReadOnly = "Competitor editing is not available yet"

type competitorItem struct{ c model.Competitor }

func (i competitorItem) FilterValue() string { return i.c.Name }
func (i competitorItem) Row() (string, string, bool) {
	return i.c.Name + "  " + styleMuted().Render(i.c.Website), string(i.c.Type), i.c.Type != model.CompetitorDirect
}

// businessContextModel is the Business Context screen. It exists only while
// that screen is shown: the app builds a fresh one on every visit, so the
// tab, open drafts and the add form never survive a screen switch.
type businessContextModel struct {
	store *store.Store
	log   *zap.Logger
	keys  keyMap

	tab bcTab

	profile *draft.ProfileEditor
	icps    *draft.ICPEditors
	adder   *draft.ICPAdder

	icpCursor int

	form     *entityForm
	formKind formKind
	formICP  int64

	competitors list.Model

	notice string
	width  int
}

func newBusinessContext(st *store.Store, log *zap.Logger, keys keyMap) *businessContextModel {
	bc := &businessContextModel{
		store:   st,
		log:     log,
		keys:    keys,
		tab:     tabProfile,
		profile: draft.NewProfileEditor(st),
		icps:    draft.NewICPEditors(st),
		adder:   draft.NewICPAdder(st),
	}

	l := list.New(nil, newCompactItemDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	// Quitting and paging are owned by the app/tab keys.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.PrevPage.SetEnabled(false)
	l.KeyMap.NextPage.SetEnabled(false)
	bc.competitors = l
	bc.refreshCompetitors()
	return bc
}

func (bc *businessContextModel) refreshCompetitors() {
	var items []list.Item
	for _, c := range bc.store.Competitors() {
		items = append(items, competitorItem{c: c})
	}
	bc.competitors.SetItems(items)
}

func (bc *businessContextModel) setSize(width, height int) {
	bc.width = width
	bc.competitors.SetSize(max(10, width-4), max(3, height-8))
	if bc.form != nil {
		bc.form.resize(width)
	}
}

// editing reports whether a form owns the keyboard.
func (bc *businessContextModel) editing() bool { return bc.form != nil }

func (bc *businessContextModel) takeNotice() string {
	n := bc.notice
	bc.notice = ""
	return n
}

func (bc *businessContextModel) setTab(t bcTab) {
	if t < tabProfile || t > tabCompetitors || t == bc.tab {
		return
	}
	bc.tab = t
	bc.log.Debug("tab changed", zap.Stringer("tab", t))
}

func (bc *businessContextModel) update(msg tea.KeyMsg) tea.Cmd {
	if bc.form != nil {
		return bc.updateForm(msg)
	}

	switch {
	case key.Matches(msg, bc.keys.Tab1):
		bc.setTab(tabProfile)
		return nil
	case key.Matches(msg, bc.keys.Tab2):
		bc.setTab(tabICPs)
		return nil
	case key.Matches(msg, bc.keys.Tab3):
		bc.setTab(tabCompetitors)
		return nil
	case key.Matches(msg, bc.keys.PrevTab):
		bc.setTab(bc.tab - 1)
		return nil
	case key.Matches(msg, bc.keys.NextTab):
		bc.setTab(bc.tab + 1)
		return nil
	}

	switch bc.tab {
	case tabICPs:
		return bc.updateICPs(msg)
	case tabCompetitors:
		return bc.updateCompetitors(msg)
	default:
		if key.Matches(msg, bc.keys.Edit) {
			return bc.startProfileEdit()
		}
		return nil
	}
}

func (bc *businessContextModel) updateICPs(msg tea.KeyMsg) tea.Cmd {
	icps := bc.store.ICPs()
	switch {
	case key.Matches(msg, bc.keys.Up):
		if bc.icpCursor > 0 {
			bc.icpCursor--
		}
	case key.Matches(msg, bc.keys.Down):
		if bc.icpCursor < len(icps)-1 {
			bc.icpCursor++
		}
	case key.Matches(msg, bc.keys.Add):
		return bc.startAdd()
	case key.Matches(msg, bc.keys.Edit):
		if icp, ok := bc.selectedICP(); ok {
			return bc.startICPEdit(icp.ID)
		}
	case key.Matches(msg, bc.keys.Delete):
		if icp, ok := bc.selectedICP(); ok {
			bc.deleteICP(icp)
		}
	}
	return nil
}

func (bc *businessContextModel) updateCompetitors(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, bc.keys.Add, bc.keys.Edit, bc.keys.Delete) {
		bc.notice = noticeCompetitorsReadOnly
		return nil
	}
	var cmd tea.Cmd
	bc.competitors, cmd = bc.competitors.Update(msg)
	return cmd
}

func (bc *businessContextModel) selectedICP() (model.ICP, bool) {
	icps := bc.store.ICPs()
	if bc.icpCursor < 0 || bc.icpCursor >= len(icps) {
		return model.ICP{}, false
	}
	return icps[bc.icpCursor], true
}

func (bc *businessContextModel) clampCursor() {
	n := len(bc.store.ICPs())
	if bc.icpCursor >= n {
		bc.icpCursor = n - 1
	}
	if bc.icpCursor < 0 {
		bc.icpCursor = 0
	}
}

func (bc *businessContextModel) deleteICP(icp model.ICP) {
	if !bc.store.DeleteICP(icp.ID) {
		return
	}
	bc.icps.Forget(icp.ID)
	bc.clampCursor()
	bc.notice = fmt.Sprintf("Deleted %q", icp.Name)
}

func (bc *businessContextModel) openForm(kind formKind, id int64, f *entityForm) tea.Cmd {
	bc.form = f
	bc.formKind = kind
	bc.formICP = id
	if bc.width > 0 {
		f.resize(bc.width)
	}
	return f.focusField(0)
}

func (bc *businessContextModel) closeForm() {
	bc.form = nil
	bc.formKind = formNone
	bc.formICP = 0
}

func (bc *businessContextModel) startProfileEdit() tea.Cmd {
	if !bc.profile.Enter() {
		return nil
	}
	d, _ := bc.profile.Draft()
	return bc.openForm(formProfile, 0, newProfileForm(d))
}

func (bc *businessContextModel) startICPEdit(id int64) tea.Cmd {
	if !bc.icps.Enter(id) {
		return nil
	}
	d, _ := bc.icps.Draft(id)
	return bc.openForm(formEditICP, id, newICPForm("Edit ICP", d.Name, d.Type, d.Description))
}

func (bc *businessContextModel) startAdd() tea.Cmd {
	if !bc.adder.Start() {
		return nil
	}
	d := bc.adder.Draft()
	return bc.openForm(formAddICP, 0, newICPForm("New ICP", d.Name, d.Type, d.Description))
}

func (bc *businessContextModel) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, bc.keys.Save):
		bc.saveForm()
		return nil
	case key.Matches(msg, bc.keys.Cancel):
		bc.cancelForm()
		return nil
	case key.Matches(msg, bc.keys.NextField):
		return bc.form.focusField(bc.form.focus + 1)
	case key.Matches(msg, bc.keys.PrevField):
		return bc.form.focusField(bc.form.focus - 1)
	}

	field, value, cmd := bc.form.update(msg, bc.keys)
	if field != "" {
		bc.fieldChange(field, value)
	}
	return cmd
}

// fieldChange forwards one edited form field to the draft that owns it.
func (bc *businessContextModel) fieldChange(field fieldKey, value string) {
	switch bc.formKind {
	case formProfile:
		switch field {
		case fieldName:
			bc.profile.SetName(value)
		case fieldWebsite:
			bc.profile.SetWebsite(value)
		case fieldDescription:
			bc.profile.SetDescription(value)
		}
	case formEditICP:
		switch field {
		case fieldName:
			bc.icps.SetName(bc.formICP, value)
		case fieldType:
			bc.icps.SetType(bc.formICP, model.ICPType(value))
		case fieldDescription:
			bc.icps.SetDescription(bc.formICP, value)
		}
	case formAddICP:
		switch field {
		case fieldName:
			bc.adder.SetName(value)
		case fieldType:
			bc.adder.SetType(model.ICPType(value))
		case fieldDescription:
			bc.adder.SetDescription(value)
		}
	}
}

func (bc *businessContextModel) saveForm() {
	var err error
	switch bc.formKind {
	case formProfile:
		err = bc.profile.Save()
	case formEditICP:
		err = bc.icps.Save(bc.formICP)
	case formAddICP:
		var icp model.ICP
		if icp, err = bc.adder.Save(); err == nil {
			bc.icpCursor = len(bc.store.ICPs()) - 1
			bc.log.Debug("icp created from form", zap.Int64("id", icp.ID))
		}
	}

	switch {
	case errors.Is(err, store.ErrEmptyRequiredField):
		bc.form.err = "ICP name is required"
		bc.form.focusField(0)
		return
	case err != nil:
		bc.log.Warn("save dropped", zap.Error(err))
	default:
		bc.notice = "Saved"
	}
	bc.closeForm()
}

func (bc *businessContextModel) cancelForm() {
	switch bc.formKind {
	case formProfile:
		bc.profile.Cancel()
	case formEditICP:
		bc.icps.Cancel(bc.formICP)
	case formAddICP:
		bc.adder.Cancel()
	}
	bc.closeForm()
}

func (bc *businessContextModel) view(width, height int) string {
	head := strings.Join([]string{
		styleHeading().Render("Business Context"),
		styleMuted().Render("Information below helps AI Agents provide better recommendations and choose optimal prompts to monitor"),
		"",
		renderTabBar(bc.tab, width),
		"",
	}, "\n")

	var body string
	switch bc.tab {
	case tabICPs:
		body = bc.viewICPs(width, height-lipgloss.Height(head))
	case tabCompetitors:
		body = bc.viewCompetitors()
	default:
		body = bc.viewProfile(width)
	}
	return head + "\n" + body
}

func renderTabBar(active bcTab, width int) string {
	var parts []string
	for i, t := range bcTabs {
		label := fmt.Sprintf("%d %s", i+1, t.label())
		st := lipgloss.NewStyle().Padding(0, 1)
		if t == active {
			st = st.Foreground(colorAccent).Bold(true).Underline(true)
		} else {
			st = st.Foreground(colorTextMuted)
		}
		parts = append(parts, st.Render(label))
	}
	row := strings.Join(parts, " ")
	rule := styleMuted().Render(strings.Repeat(glyphHRule(), max(0, width-2)))
	return row + "\n" + rule
}

func sectionHeader(title, subtitle, hint string) string {
	left := styleHeading().Render(title) + "\n" + styleMuted().Render(subtitle)
	if hint == "" {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", styleMuted().Render(hint))
}

func (bc *businessContextModel) viewProfile(width int) string {
	if bc.formKind == formProfile && bc.form != nil {
		return bc.form.view(width)
	}
	p := bc.store.Profile()
	label := styleMuted()
	inner := max(20, width-6)
	lines := []string{
		styleHeading().Render("Company Profile") + "   " + styleMuted().Render("[e] Edit Profile"),
		"",
		label.Render("Company Name"),
		emptyAsDash(p.Name),
		"",
		label.Render("Website"),
		lipgloss.NewStyle().Foreground(colorAccent).Render(emptyAsDash(p.Website)),
		"",
		label.Render("Description"),
		emptyAsDash(renderMarkdown(p.Description, inner)),
	}
	return styleCard(false).Width(max(24, width-2)).Render(strings.Join(lines, "\n"))
}

func (bc *businessContextModel) viewICPs(width, height int) string {
	parts := []string{sectionHeader("Company ICPs", "Ideal customer profiles define your target market segments", "[n] Add ICP"), ""}
	if bc.formKind == formAddICP && bc.form != nil {
		parts = append(parts, bc.form.view(width))
	}

	icps := bc.store.ICPs()
	if len(icps) == 0 && bc.formKind != formAddICP {
		parts = append(parts, styleMuted().Render("No ICPs yet. Press n to add one."))
		return strings.Join(parts, "\n")
	}

	cards := make([]string, len(icps))
	for i, icp := range icps {
		if bc.formKind == formEditICP && bc.form != nil && bc.formICP == icp.ID {
			cards[i] = bc.form.view(width)
			continue
		}
		cards[i] = renderICPCard(icp, i == bc.icpCursor && bc.form == nil, width)
	}

	// Keep the selected card on screen: drop cards from the top until the
	// cursor fits below the header.
	used := lipgloss.Height(strings.Join(parts, "\n"))
	start := 0
	for start < bc.icpCursor && used+linesOf(cards[start:bc.icpCursor+1]) > height {
		start++
	}
	if start > 0 {
		parts = append(parts, styleMuted().Render(fmt.Sprintf("%s %d more above", glyphBullet(), start)))
	}
	parts = append(parts, cards[start:]...)
	return strings.Join(parts, "\n")
}

func linesOf(blocks []string) int {
	n := 0
	for _, b := range blocks {
		n += lipgloss.Height(b)
	}
	return n
}

func renderICPCard(icp model.ICP, selected bool, width int) string {
	head := styleHeading().Render(icp.Name) + "  " + styleBadge(false).Render(string(icp.Type))
	if selected {
		head += "   " + styleMuted().Render("[e] Edit  [d] Delete")
	}
	body := []string{
		head,
		styleMuted().Render("Description"),
		emptyAsDash(renderMarkdown(icp.Description, max(20, width-6))),
	}
	return styleCard(selected).Width(max(24, width-2)).Render(strings.Join(body, "\n"))
}

func (bc *businessContextModel) viewCompetitors() string {
	return sectionHeader("Competitor Analysis", "Companies you track for competitive intelligence", "[a] Add Competitor") +
		"\n\n" + bc.competitors.View()
}

func emptyAsDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
