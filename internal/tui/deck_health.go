package tui

import (
	"fmt"
	"strings"

	"github.com/currencydash/anchor/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// HealthDeck renders the latest full health report alongside the liveness
// and readiness probe results.
type HealthDeck struct{}

// NewHealthDeck creates the health deck.
func NewHealthDeck() *HealthDeck {
	return &HealthDeck{}
}

func (d *HealthDeck) ID() string    { return "health" }
func (d *HealthDeck) Title() string { return "Health" }

func statusStyle(s model.OverallStatus) lipgloss.Style {
	switch s {
	case model.StatusHealthy:
		return okStyle
	case model.StatusDegraded:
		return warnStyle
	case model.StatusUnavailable:
		return errStyle
	default:
		return helpStyle
	}
}

func (d *HealthDeck) Render(ctx ViewContext, width int, active bool) string {
	style := sectionStyle.Width(width)
	if active {
		style = activeSectionStyle.Width(width)
	}

	var lines []string
	lines = append(lines, d.renderReport(ctx.Health))
	lines = append(lines, "")
	lines = append(lines, d.renderProbes(ctx))

	title := deckTitleStyle.Render("Service Health")
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n")))
}

func (d *HealthDeck) renderReport(state *CheckState) string {
	if state == nil || (state.Report == nil && !state.Busy) {
		return helpStyle.Render("press h to check health")
	}
	if state.Busy {
		return helpStyle.Render("checking...")
	}

	report := state.Report
	var b strings.Builder
	b.WriteString(labelStyle.Render("Overall  "))
	b.WriteString(statusStyle(report.Overall).Render(string(report.Overall)))
	if report.Detail != "" {
		b.WriteString(helpStyle.Render("  " + report.Detail))
	}
	b.WriteString("\n")

	for _, c := range report.Components {
		marker := okStyle.Render("●")
		if c.Warning {
			marker = warnStyle.Render("●")
		}
		b.WriteString(fmt.Sprintf("  %s %-16s %s\n", marker, c.Name, helpStyle.Render(c.Status)))
	}
	if flagged := report.Warnings(); len(flagged) > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  %d component(s) need attention", len(flagged))))
		b.WriteString("\n")
	}

	if report.Uptime.TotalSeconds() > 0 {
		b.WriteString(labelStyle.Render("Uptime   "))
		b.WriteString(valueStyle.Render(report.Uptime.String()))
	}
	return b.String()
}

func (d *HealthDeck) renderProbes(ctx ViewContext) string {
	probe := func(name string, state *CheckState) string {
		label := labelStyle.Render(fmt.Sprintf("%-10s", name))
		if state == nil || (state.Report == nil && !state.Busy) {
			return label + helpStyle.Render("—")
		}
		if state.Busy {
			return label + helpStyle.Render("checking...")
		}
		return label + statusStyle(state.Report.Overall).Render(string(state.Report.Overall))
	}
	return probe("Liveness", ctx.Live) + "\n" + probe("Readiness", ctx.Ready) + "\n" + helpStyle.Render("p runs both probes")
}
