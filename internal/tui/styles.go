package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared across the dashboard. The skin file may override these at
// startup before any styles are built.
var (
	ColorNavy   = lipgloss.Color("#0f172a")
	ColorSlate  = lipgloss.Color("#1e293b")
	ColorWhite  = lipgloss.Color("#e2e8f0")
	ColorGray   = lipgloss.Color("#64748b")
	ColorBlue   = lipgloss.Color("#38bdf8")
	ColorGreen  = lipgloss.Color("#10b981")
	ColorOrange = lipgloss.Color("#f59e0b")
	ColorRed    = lipgloss.Color("#ef4444")
	ColorPurple = lipgloss.Color("#a78bfa")
)

var (
	sectionStyle       lipgloss.Style
	activeSectionStyle lipgloss.Style
	deckTitleStyle     lipgloss.Style
	helpStyle          lipgloss.Style
	statusBarStyle     lipgloss.Style
	tabStyle           lipgloss.Style
	activeTabStyle     lipgloss.Style
	labelStyle         lipgloss.Style
	valueStyle         lipgloss.Style
	deltaUpStyle       lipgloss.Style
	deltaDownStyle     lipgloss.Style
	okStyle            lipgloss.Style
	warnStyle          lipgloss.Style
	errStyle           lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles derives every style from the current palette. Called once at
// init and again after a skin overrides the palette.
func rebuildStyles() {
	sectionStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSlate).
		Padding(0, 1)

	activeSectionStyle = sectionStyle.BorderForeground(ColorBlue)

	deckTitleStyle = lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true)

	helpStyle = lipgloss.NewStyle().
		Foreground(ColorGray).
		Italic(true)

	statusBarStyle = lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	tabStyle = lipgloss.NewStyle().
		Foreground(ColorGray).
		Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
		Foreground(ColorWhite).
		Background(ColorSlate).
		Bold(true).
		Padding(0, 2)

	labelStyle = lipgloss.NewStyle().Foreground(ColorWhite)
	valueStyle = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
	deltaUpStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	deltaDownStyle = lipgloss.NewStyle().Foreground(ColorRed)
	okStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	warnStyle = lipgloss.NewStyle().Foreground(ColorOrange)
	errStyle = lipgloss.NewStyle().Foreground(ColorRed)
}

// deltaStyle picks the up/down style from the sign prefix of a delta string.
func deltaStyle(delta string) lipgloss.Style {
	if len(delta) > 0 && delta[0] == '-' {
		return deltaDownStyle
	}
	return deltaUpStyle
}
