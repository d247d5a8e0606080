package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Search      key.Binding
	Collection  key.Binding
	Year        key.Binding
	PinVenue    key.Binding
	PinTag      key.Binding
	RemoveBadge key.Binding
	Sort        key.Binding
	Detail      key.Binding
	Back        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k", "ctrl+p"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j", "ctrl+n"), key.WithHelp("↓/j", "down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Top:         key.NewBinding(key.WithKeys("home", "g", "<"), key.WithHelp("g", "top")),
		Bottom:      key.NewBinding(key.WithKeys("end", "G", ">"), key.WithHelp("G", "bottom")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Collection:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "tag")),
		Year:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "year")),
		PinVenue:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "pin venue")),
		PinTag:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "pin tag")),
		RemoveBadge: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "unpin")),
		Sort:        key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "sort")),
		Detail:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Collection, k.Year, k.Sort, k.PinVenue, k.PinTag, k.RemoveBadge, k.Detail, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Search, k.Collection, k.Year, k.Sort},
		{k.PinVenue, k.PinTag, k.RemoveBadge, k.Detail, k.Back, k.Quit},
	}
}
