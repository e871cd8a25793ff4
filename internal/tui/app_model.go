package tui

import (
	"visibilitystack-cli/internal/nav"
	"visibilitystack-cli/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"go.uber.org/zap"
)

const defaultAccountEmail = "john.doe@company.com"

type appModel struct {
	nav   *nav.Controller
	store *store.Store
	log   *zap.Logger

	accountEmail string

	width  int
	height int

	focus   focusZone
	sidebar sidebar
	menu    accountMenu

	// business is non-nil only while the Business Context screen is shown.
	business *businessContextModel

	keys keyMap
	help help.Model

	minibufferText string
	flashSeq       int
}

func newAppModel(opts Options) appModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ctl := opts.Nav
	if ctl == nil {
		ctl = nav.New()
	}
	email := opts.AccountEmail
	if email == "" {
		email = defaultAccountEmail
	}

	m := appModel{
		nav:          ctl,
		store:        opts.Store,
		log:          log,
		accountEmail: email,
		keys:         defaultKeyMap(),
		help:         help.New(),
		sidebar:      newSidebar(ctl.Current()),
	}
	m.syncScreen()
	return m
}

// syncScreen builds or drops per-screen state to match the controller.
func (m *appModel) syncScreen() {
	cur := m.nav.Current()
	m.sidebar.syncCursor(cur)
	if cur != nav.BusinessContext {
		m.business = nil
		return
	}
	if m.business == nil {
		m.business = newBusinessContext(m.store, m.log, m.keys)
		m.resizeMain()
	}
}

func (m *appModel) setFlow(s nav.Screen) {
	if err := m.nav.SetFlow(s); err != nil {
		m.log.Warn("navigation rejected", zap.String("screen", string(s)), zap.Error(err))
		return
	}
	m.syncScreen()
}

func (m *appModel) mainWidth() int {
	return max(20, m.width-sidebarWidth-2)
}

func (m *appModel) mainHeight() int {
	// Header (2 lines) and footer (2 lines).
	return max(5, m.height-4)
}

func (m *appModel) resizeMain() {
	m.sidebar.height = max(1, m.height-1)
	if m.business != nil {
		m.business.setSize(m.mainWidth(), m.mainHeight())
	}
	m.help.Width = m.width
}
