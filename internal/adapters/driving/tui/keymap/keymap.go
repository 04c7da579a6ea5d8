// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Search runs a lookup from the input fields.
	Search key.Binding

	// NextField moves focus between the crop input, the disease input and
	// the results table.
	NextField key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// NewSearch returns focus to the crop input from the results.
	NewSearch key.Binding

	// ToggleExact switches between substring and exact matching.
	ToggleExact key.Binding

	// Open opens the selected crop link in the browser.
	Open key.Binding

	// Copy copies the shown record to the clipboard.
	Copy key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		NewSearch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new search"),
		),
		ToggleExact: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "exact match"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in browser"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// SearchHelp returns keybindings for the search inputs.
func (k *KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextField, k.ToggleExact, k.Back}
}

// ResultsHelp returns keybindings for the results table.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.Select, k.NewSearch, k.NextField, k.Back}
}

// LinksHelp returns keybindings for the crop link list.
func (k *KeyMap) LinksHelp() []key.Binding {
	return []key.Binding{k.Select, k.Open, k.Back}
}

// RecordHelp returns keybindings for the record view.
func (k *KeyMap) RecordHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Up, k.Down, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Search, k.NextField, k.ToggleExact, k.NewSearch},
		{k.Open, k.Copy, k.Back},
		{k.Help, k.Quit},
	}
}
