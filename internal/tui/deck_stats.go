package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatsDeck renders the latest usage snapshot from the stats endpoint.
type StatsDeck struct{}

// NewStatsDeck creates the stats deck.
func NewStatsDeck() *StatsDeck {
	return &StatsDeck{}
}

func (d *StatsDeck) ID() string    { return "stats" }
func (d *StatsDeck) Title() string { return "Stats" }

func (d *StatsDeck) Render(ctx ViewContext, width int, active bool) string {
	style := sectionStyle.Width(width)
	if active {
		style = activeSectionStyle.Width(width)
	}

	title := deckTitleStyle.Render("Usage Statistics")
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, d.renderBody(ctx, width)))
}

func (d *StatsDeck) renderBody(ctx ViewContext, width int) string {
	state := ctx.Stats
	if state == nil || (state.Snapshot == nil && !state.Busy && state.Err == "") {
		return helpStyle.Render("press s to fetch stats")
	}
	if state.Busy {
		return helpStyle.Render("fetching...")
	}
	if state.Err != "" {
		return errStyle.Render(state.Err)
	}

	snap := state.Snapshot
	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-18s", label)) + valueStyle.Render(value)
	}

	var lines []string
	lines = append(lines, row("Requests total", fmt.Sprintf("%d", snap.RequestsTotal)))
	lines = append(lines, row("Last 5 minutes", fmt.Sprintf("%d", snap.RequestsLast5Min)))
	lines = append(lines, row("Error rate", snap.ErrorRateDisplay()))
	lines = append(lines, row("Avg latency", snap.AvgLatencyDisplay()))
	lines = append(lines, row("Cache hit rate", snap.CacheHitRateDisplay()))

	if len(snap.TopEndpoints) > 0 {
		lines = append(lines, "")
		lines = append(lines, labelStyle.Render("Top endpoints"))

		var maxCount int64
		for _, e := range snap.TopEndpoints {
			if e.Count > maxCount {
				maxCount = e.Count
			}
		}
		barSpace := width - 40
		if barSpace < 8 {
			barSpace = 8
		}
		for _, e := range snap.TopEndpoints {
			barLen := 1
			if maxCount > 0 {
				barLen = int(float64(e.Count) / float64(maxCount) * float64(barSpace))
				if barLen < 1 {
					barLen = 1
				}
			}
			bar := lipgloss.NewStyle().Foreground(ColorBlue).Render(strings.Repeat("▆", barLen))
			lines = append(lines, fmt.Sprintf("  %-22s %s %d (%.0fms)", e.Endpoint, bar, e.Count, e.AvgMs))
		}
	}
	return strings.Join(lines, "\n")
}
