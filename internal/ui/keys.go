package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	ViewLogs   key.Binding
	Escape     key.Binding

	// Widget
	ToggleOpen    key.Binding
	ToggleVisible key.Binding
	Back          key.Binding
	Refresh       key.Binding

	// Mode selector
	PickDynamic    key.Binding
	PickElementary key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Elementary board
	AddScore  key.Binding
	Delete    key.Binding
	NextField key.Binding

	// Logs
	ToggleFollow key.Binding

	// Modal / input
	Confirm key.Binding
	Yes     key.Binding
	No      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ViewLogs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Toggle log view"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back / close"),
		),

		// Widget
		ToggleOpen: key.NewBinding(
			key.WithKeys("o", " "),
			key.WithHelp("o/space", "Expand or collapse"),
		),
		ToggleVisible: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Show or hide leaderboard"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "Back to selector"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh now"),
		),

		// Mode selector
		PickDynamic: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Dynamic leaderboard"),
		),
		PickElementary: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Elementary leaderboard"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		// Elementary board
		AddScore: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add a score"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "Delete selected score"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "Switch field"),
		),

		// Logs
		ToggleFollow: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Toggle follow mode"),
		),

		// Modal / input
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Select / submit"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "Yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "No"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Widget
		{k.ToggleOpen, k.ToggleVisible, k.Back, k.Refresh},
		// Selector
		{k.PickDynamic, k.PickElementary, k.Confirm},
		// Elementary
		{k.Up, k.Down, k.AddScore, k.NextField, k.Delete},
		// General
		{k.ViewLogs, k.CycleTheme, k.Help, k.Quit},
	}
}
