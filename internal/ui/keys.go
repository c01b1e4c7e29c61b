package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Add      key.Binding
	Random   key.Binding
	Shortcut key.Binding
	Produce  key.Binding
	Cart     key.Binding
	Remove   key.Binding
	Clear    key.Binding
	Guide    key.Binding
	Checkout key.Binding
	Theme    key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding

	// weighing sheet
	Weigh   key.Binding
	Error   key.Binding
	Confirm key.Binding

	// walkthrough
	Pause key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add item"),
		),
		Random: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add random"),
		),
		Shortcut: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "quick add"),
		),
		Produce: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "produce"),
		),
		Cart: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cart"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete", "backspace"),
			key.WithHelp("x", "remove one"),
		),
		Clear: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "clear cart"),
		),
		Guide: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "how to weigh"),
		),
		Checkout: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "checkout"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "shortcuts"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Weigh: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "weigh"),
		),
		Error: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "scale error"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
	}
}

// SearchKeyMap returns bindings for the produce search screen. Letter keys
// belong to the search box there.
func SearchKeyMap() KeyMap {
	km := DefaultKeyMap()
	km.Up.SetKeys("up")
	km.Up.SetHelp("↑", "up")
	km.Down.SetKeys("down")
	km.Down.SetHelp("↓", "down")
	km.Add.SetHelp("enter", "weigh item")
	km.Quit.SetKeys("ctrl+c")
	km.Quit.SetHelp("ctrl+c", "quit")
	return km
}

// helpKeys adapts a set of bindings to help.KeyMap.
type helpKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding  { return h.short }
func (h helpKeys) FullHelp() [][]key.Binding { return h.full }
