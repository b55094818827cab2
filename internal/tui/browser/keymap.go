package browser

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the library browser TUI
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Enter       key.Binding
	Back        key.Binding
	Search      key.Binding
	SearchAll   key.Binding
	Sort        key.Binding
	CycleGenre  key.Binding
	CycleStatus key.Binding
	CycleRead   key.Binding
	ClearFilter key.Binding
	Rescan      key.Binding
	GoToTop     key.Binding
	GoToBottom  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Back},
		{k.Search, k.SearchAll, k.Sort, k.Rescan},
		{k.CycleGenre, k.CycleStatus, k.CycleRead, k.ClearFilter},
		{k.GoToTop, k.GoToBottom, k.Help, k.Quit},
	}
}

var keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter", "l"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("backspace", "h"),
		key.WithHelp("backspace", "go up"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search here"),
	),
	SearchAll: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "search everywhere"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "cycle sort"),
	),
	CycleGenre: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "cycle genre filter"),
	),
	CycleStatus: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "cycle status filter"),
	),
	CycleRead: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "cycle read filter"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear filters"),
	),
	Rescan: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "rescan library"),
	),
	GoToTop: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "go to top"),
	),
	GoToBottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "go to bottom"),
	),
	Help: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
