package tui

import (
	"fmt"
	"strings"

	"github.com/currencydash/anchor/internal/education"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// ReservesDeck charts per-country foreign exchange reserves with a legend of
// month-over-month changes.
type ReservesDeck struct{}

// NewReservesDeck creates the reserves deck.
func NewReservesDeck() *ReservesDeck {
	return &ReservesDeck{}
}

func (d *ReservesDeck) ID() string    { return "reserves" }
func (d *ReservesDeck) Title() string { return "FX Reserves" }

func (d *ReservesDeck) Render(_ ViewContext, width int, active bool) string {
	style := sectionStyle.Width(width)
	if active {
		style = activeSectionStyle.Width(width)
	}

	reserves := education.Reserves()

	legendWidth := 30
	chartHeight := 8
	if width < 80 {
		chartHeight = 6
	}
	chartWidth := width - legendWidth - 4
	if chartWidth < 20 {
		chartWidth = 20
	}

	barStyle := lipgloss.NewStyle().Foreground(ColorBlue).Background(ColorBlue)
	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(3),
	)
	for _, r := range reserves {
		label := r.Country
		if len(label) > 3 {
			label = label[:3]
		}
		bc.Push(barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{
				{Name: r.Country, Value: r.Reserves, Style: barStyle},
			},
		})
	}
	bc.Draw()

	var legendLines []string
	for _, r := range reserves {
		change := fmt.Sprintf("%+.1f", r.Change)
		line := fmt.Sprintf("%-13s $%7.1fB ", r.Country, r.Reserves)
		legendLines = append(legendLines, labelStyle.Render(line)+deltaStyle(change).Render(change))
	}
	for len(legendLines) < chartHeight {
		legendLines = append(legendLines, "")
	}

	chartLines := strings.Split(bc.View(), "\n")
	for len(chartLines) < chartHeight {
		chartLines = append(chartLines, "")
	}

	var combined []string
	for i := 0; i < chartHeight; i++ {
		chartLine := ""
		legendLine := ""
		if i < len(chartLines) {
			chartLine = chartLines[i]
		}
		if i < len(legendLines) {
			legendLine = legendLines[i]
		}
		pad := chartWidth - lipgloss.Width(chartLine)
		if pad > 0 {
			chartLine += strings.Repeat(" ", pad)
		}
		combined = append(combined, chartLine+"  "+legendLine)
	}

	title := deckTitleStyle.Render("Major FX Reserve Holders ($B)")
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(combined, "\n")))
}
