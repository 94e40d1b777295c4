package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderTabs())

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	} else {
		ctx := m.viewContext()
		vw := m.activeView()
		deckWidth := m.width - 2
		if deckWidth < 30 {
			deckWidth = 30
		}
		for i, deck := range vw.Decks {
			sections = append(sections, deck.Render(ctx, deckWidth, i == vw.ActiveDeckIdx))
		}
	}

	sections = append(sections, m.renderStatusLine())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders "Anchor" with a green to blue gradient.
func (m *DashboardModel) renderHeader() string {
	colors := []string{
		"#10b981",
		"#0ebf9a",
		"#0cc4b3",
		"#0ac9cc",
		"#18c2e8",
		"#38bdf8",
	}
	chars := []string{"A", "n", "c", "h", "o", "r"}

	var brand string
	for i, char := range chars {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors[i])).
			Bold(true)
		brand += style.Render(char)
	}

	subtitle := helpStyle.Render(" · currency dashboard")
	return brand + subtitle
}

func (m *DashboardModel) renderTabs() string {
	var tabs []string
	for i, vw := range m.views {
		label := fmt.Sprintf("%d %s", i+1, vw.Title)
		if i == m.activeViewIdx {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *DashboardModel) renderHelp() string {
	lines := []string{
		deckTitleStyle.Render("Key Bindings"),
		"",
		"  [ / ]      switch view        1/2/3    jump to view",
		"  tab        next deck          ?        toggle this help",
		"",
		"  Education:",
		"  + / -      adjust simulated fed rate",
		"  ← / →      switch economic indicator",
		"",
		"  Portfolio:",
		"  i          edit market description (enter submits)",
		"  a / enter  request AI analysis",
		"",
		"  System:",
		"  h          health check        p    liveness/readiness probes",
		"  s          fetch usage statistics",
		"",
		"  q          quit",
	}
	width := m.width - 2
	if width < 30 {
		width = 30
	}
	return sectionStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderStatusLine renders the status/help line at the bottom of the screen.
func (m *DashboardModel) renderStatusLine() string {
	var left string
	if m.anyPipelineBusy() {
		left = spinnerFrame() + " working"
	} else if notice := m.currentNotice(); notice != "" {
		left = notice
	} else {
		switch m.activeView().ID {
		case "education":
			left = "+/-: fed rate • ←/→: indicator • ?: help"
		case "portfolio":
			if m.inputActive {
				left = "enter: submit • esc: cancel"
			} else {
				left = "i: edit input • a: analyze • ?: help"
			}
		case "system":
			left = "h: health • p: probes • s: stats • ?: help"
		}
	}

	right := fmt.Sprintf("anchor %s", m.version)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := " " + left + strings.Repeat(" ", gap) + right + " "
	return statusBarStyle.Width(m.width).Render(line)
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinnerFrame picks a frame from the wall clock so it animates on re-render.
func spinnerFrame() string {
	return spinnerFrames[time.Now().UnixMilli()/120%int64(len(spinnerFrames))]
}
