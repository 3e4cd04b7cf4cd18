package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	nextPage key.Binding
	prevPage key.Binding
	enter    key.Binding
	back     key.Binding
	movies   key.Binding
	series   key.Binding
	library  key.Binding
	users    key.Binding
	favorite key.Binding
	pending  key.Binding
	viewed   key.Binding
	cycle    key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		nextPage: key.NewBinding(key.WithKeys("l", "]"), key.WithHelp("l", "next page")),
		prevPage: key.NewBinding(key.WithKeys("h", "["), key.WithHelp("h", "prev page")),
		enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		movies:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "movies")),
		series:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "series")),
		library:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "library")),
		users:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "users")),
		favorite: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		pending:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pending")),
		viewed:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "viewed")),
		cycle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "cycle list")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.nextPage, k.prevPage, k.cycle},
		{k.movies, k.series, k.library, k.users},
		{k.favorite, k.pending, k.viewed, k.quit},
	}
}
