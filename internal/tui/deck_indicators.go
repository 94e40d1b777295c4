package tui

import (
	"fmt"
	"strings"

	"github.com/currencydash/anchor/internal/education"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// IndicatorsDeck charts one economic indicator series across the year, with
// the fed rate simulation readout in the header. Left/right switches series.
type IndicatorsDeck struct{}

// NewIndicatorsDeck creates the indicator chart deck.
func NewIndicatorsDeck() *IndicatorsDeck {
	return &IndicatorsDeck{}
}

func (d *IndicatorsDeck) ID() string    { return "indicators" }
func (d *IndicatorsDeck) Title() string { return "Economic Indicators" }

func (d *IndicatorsDeck) Render(ctx ViewContext, width int, active bool) string {
	style := sectionStyle.Width(width)
	if active {
		style = activeSectionStyle.Width(width)
	}

	indicators := education.Indicators()
	idx := ctx.IndicatorIdx
	if idx < 0 || idx >= len(indicators) {
		idx = 0
	}
	series := indicators[idx]

	leftTitle := fmt.Sprintf("Economic Indicators 2024 · %s (%s)", series.Name, series.Unit)
	rightStats := fmt.Sprintf("Fed rate sim: %.3f%%", ctx.FedRate)
	headerText := joinHeader(leftTitle, rightStats, width-4)
	title := deckTitleStyle.Render(headerText)

	chartHeight := 8
	if width < 80 {
		chartHeight = 6
	}
	chartWidth := width - 4
	if chartWidth < 24 {
		chartWidth = 24
	}

	barStyle := lipgloss.NewStyle().Foreground(ColorGreen).Background(ColorGreen)
	if idx == 1 {
		barStyle = lipgloss.NewStyle().Foreground(ColorOrange).Background(ColorOrange)
	} else if idx == 2 {
		barStyle = lipgloss.NewStyle().Foreground(ColorPurple).Background(ColorPurple)
	}

	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(3),
	)
	for i, v := range series.Values {
		bc.Push(barchart.BarData{
			Label: education.Months[i],
			Values: []barchart.BarValue{
				{Name: series.Name, Value: v, Style: barStyle},
			},
		})
	}
	bc.Draw()

	legend := helpStyle.Render(fmt.Sprintf("latest: %.1f%s · ←/→ indicator · +/- fed rate", series.Values[len(series.Values)-1], series.Unit))
	content := strings.Join([]string{bc.View(), legend}, "\n")

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

// joinHeader lays a left title and right stat on one line with a spacer.
func joinHeader(left, right string, available int) string {
	spacer := available - len(left) - len(right)
	if spacer <= 0 {
		return left
	}
	return left + strings.Repeat(" ", spacer) + right
}
