package tui

import (
	"strings"

	"github.com/currencydash/anchor/internal/education"

	"github.com/charmbracelet/lipgloss"
)

// MetricsDeck renders a row of headline metric cards.
type MetricsDeck struct {
	id      string
	title   string
	metrics []education.Metric
}

// NewMetricsDeck creates a metrics deck over fixed content.
func NewMetricsDeck(id, title string, metrics []education.Metric) *MetricsDeck {
	return &MetricsDeck{id: id, title: title, metrics: metrics}
}

func (d *MetricsDeck) ID() string    { return d.id }
func (d *MetricsDeck) Title() string { return d.title }

func (d *MetricsDeck) Render(_ ViewContext, width int, active bool) string {
	style := sectionStyle.Width(width)
	if active {
		style = activeSectionStyle.Width(width)
	}

	cardWidth := (width - 4) / len(d.metrics)
	if cardWidth < 16 {
		cardWidth = 16
	}

	var cards []string
	for _, metric := range d.metrics {
		lines := []string{
			labelStyle.Render(metric.Label),
			valueStyle.Render(metric.Value),
			deltaStyle(metric.Delta).Render(metric.Delta),
		}
		cards = append(cards, lipgloss.NewStyle().Width(cardWidth).Render(strings.Join(lines, "\n")))
	}

	title := deckTitleStyle.Render(d.title)
	content := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
