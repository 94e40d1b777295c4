package tui

import (
	"fmt"
	"strings"

	"github.com/currencydash/anchor/internal/education"

	"github.com/charmbracelet/lipgloss"
)

// AllocationDeck renders the sample portfolio breakdown as horizontal bars.
type AllocationDeck struct{}

// NewAllocationDeck creates the allocation deck.
func NewAllocationDeck() *AllocationDeck {
	return &AllocationDeck{}
}

func (d *AllocationDeck) ID() string    { return "allocation" }
func (d *AllocationDeck) Title() string { return "Allocation" }

var allocationColors = []lipgloss.Color{
	ColorGreen, ColorBlue, ColorOrange, ColorGray, ColorPurple,
}

func (d *AllocationDeck) Render(_ ViewContext, width int, active bool) string {
	style := sectionStyle.Width(width)
	if active {
		style = activeSectionStyle.Width(width)
	}

	allocation := education.PortfolioAllocation()

	labelWidth := 0
	for _, a := range allocation {
		if len(a.Asset) > labelWidth {
			labelWidth = len(a.Asset)
		}
	}
	barSpace := width - labelWidth - 14
	if barSpace < 10 {
		barSpace = 10
	}

	var lines []string
	for i, a := range allocation {
		barLen := int(a.Percent / 100 * float64(barSpace))
		if barLen < 1 {
			barLen = 1
		}
		color := allocationColors[i%len(allocationColors)]
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
		label := fmt.Sprintf("%-*s", labelWidth, a.Asset)
		lines = append(lines, fmt.Sprintf("%s  %s %4.0f%%", labelStyle.Render(label), bar, a.Percent))
	}

	title := deckTitleStyle.Render("Portfolio Allocation")
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n")))
}
