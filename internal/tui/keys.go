package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all dashboard key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding

	// Navigation
	NextView     key.Binding
	PrevView     key.Binding
	NextDeck     key.Binding
	PrevDeck     key.Binding
	EducationTab key.Binding
	PortfolioTab key.Binding
	SystemTab    key.Binding

	// Education view
	RateUp        key.Binding
	RateDown      key.Binding
	NextIndicator key.Binding
	PrevIndicator key.Binding

	// Portfolio view
	EditInput key.Binding
	Analyze   key.Binding

	// System view
	CheckHealth key.Binding
	CheckProbes key.Binding
	FetchStats  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("escape", "esc"),
			key.WithHelp("esc", "cancel/close"),
		),

		NextView: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev view"),
		),
		NextDeck: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next deck"),
		),
		PrevDeck: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev deck"),
		),
		EducationTab: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "education"),
		),
		PortfolioTab: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "portfolio"),
		),
		SystemTab: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "system"),
		),

		RateUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "raise fed rate"),
		),
		RateDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "lower fed rate"),
		),
		NextIndicator: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next indicator"),
		),
		PrevIndicator: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev indicator"),
		),

		EditInput: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "edit market description"),
		),
		Analyze: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "request analysis"),
		),

		CheckHealth: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "health check"),
		),
		CheckProbes: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "liveness/readiness probes"),
		),
		FetchStats: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "fetch stats"),
		),
	}
}
