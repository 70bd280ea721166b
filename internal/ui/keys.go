package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Login      key.Binding
	Escape     key.Binding

	// View switching
	ViewHome    key.Binding
	ViewArchive key.Binding
	ViewAbout   key.Binding
	ViewDream   key.Binding
	ViewAdmin   key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	PrevTab  key.Binding
	NextTab  key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Actions
	Clap     key.Binding
	Write    key.Binding
	Add      key.Binding
	Delete   key.Binding
	Edit     key.Binding
	NextFlag key.Binding
	Reset    key.Binding
	Refresh  key.Binding

	// Forms
	NextField key.Binding
	Submit    key.Binding
	Confirm   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Login: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Owner login/logout"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel / back"),
		),

		ViewHome: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Home"),
		),
		ViewArchive: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Archive"),
		),
		ViewAbout: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "About"),
		),
		ViewDream: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Dream analyzer"),
		),
		ViewAdmin: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "Owner dashboard"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("h", "left", "["),
			key.WithHelp("h/[", "Previous tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("l", "right", "]"),
			key.WithHelp("l/]", "Next tab"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Scroll down"),
		),

		Clap: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Send a clap"),
		),
		Write: key.NewBinding(
			key.WithKeys("m", "i"),
			key.WithHelp("m/i", "Write"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a/n", "Add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "Delete"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "Edit field"),
		),
		NextFlag: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Toggle option"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Reset settings"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload logs"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Submit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
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
		{k.ViewHome, k.ViewArchive, k.ViewAbout, k.ViewDream, k.ViewAdmin},
		{k.Up, k.Down, k.PrevTab, k.NextTab, k.PageUp, k.PageDown},
		{k.Clap, k.Write, k.Add, k.Delete, k.Edit, k.NextFlag, k.Reset, k.Refresh},
		{k.NextField, k.Submit, k.Escape},
		{k.Login, k.CycleTheme, k.Help, k.Quit},
	}
}
