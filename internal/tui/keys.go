package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Focus     key.Binding
	Menu      key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Back      key.Binding
	PrevTab   key.Binding
	NextTab   key.Binding
	Tab1      key.Binding
	Tab2      key.Binding
	Tab3      key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Add       key.Binding
	Save      key.Binding
	Cancel    key.Binding
	NextField key.Binding
	PrevField key.Binding
	PrevType  key.Binding
	NextType  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sidebar")),
		Menu:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "account")),
		Up:        key.NewBinding(key.WithKeys("up", "k", "ctrl+p"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j", "ctrl+n"), key.WithHelp("↓/j", "down")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		PrevTab:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev tab")),
		NextTab:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next tab")),
		Tab1:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "profile")),
		Tab2:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "ICPs")),
		Tab3:      key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "competitors")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Add:       key.NewBinding(key.WithKeys("n", "a"), key.WithHelp("n", "add")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "ctrl+g"), key.WithHelp("esc", "cancel")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		PrevType:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "type")),
		NextType:  key.NewBinding(key.WithKeys("right", "l", " "), key.WithHelp("→", "type")),
	}
}
