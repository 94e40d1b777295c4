package tui

import (
	"fmt"

	"github.com/currencydash/anchor/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// AnalysisDeck renders the market-text input and the latest interpretation
// returned by the analysis endpoint.
type AnalysisDeck struct{}

// NewAnalysisDeck creates the analysis deck.
func NewAnalysisDeck() *AnalysisDeck {
	return &AnalysisDeck{}
}

func (d *AnalysisDeck) ID() string    { return "analysis" }
func (d *AnalysisDeck) Title() string { return "Analysis" }

func (d *AnalysisDeck) Render(ctx ViewContext, width int, active bool) string {
	style := sectionStyle.Width(width)
	if active {
		style = activeSectionStyle.Width(width)
	}

	inputLabel := labelStyle.Render("Market data")
	if ctx.InputActive {
		inputLabel = valueStyle.Render("Market data (editing, enter to submit)")
	}

	body := d.renderOutcome(ctx)

	title := deckTitleStyle.Render("Investment Simulator")
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		inputLabel,
		ctx.InputView,
		"",
		body,
	))
}

func (d *AnalysisDeck) renderOutcome(ctx ViewContext) string {
	state := ctx.Analysis
	if state == nil || (state.Outcome == nil && !state.Busy) {
		return helpStyle.Render("press a to analyze, i to edit input")
	}
	if state.Busy {
		return helpStyle.Render("analyzing...")
	}

	oc := state.Outcome
	switch oc.Kind {
	case model.AnalysisSuccess:
		header := okStyle.Render("Analysis")
		if oc.FromCache {
			header = lipgloss.JoinHorizontal(lipgloss.Left, header, " ", helpStyle.Render("(cached)"))
		}
		return lipgloss.JoinVertical(lipgloss.Left, header, valueStyle.Render(oc.Narrative))
	case model.AnalysisRateLimited:
		return warnStyle.Render("Rate limit reached. Wait a moment before trying again.")
	case model.AnalysisServerError:
		return errStyle.Render(fmt.Sprintf("The analysis service failed (HTTP %d).", oc.StatusCode))
	case model.AnalysisConnectionFailed:
		return errStyle.Render("Could not reach the backend. Check that it is running.")
	case model.AnalysisTimeout:
		return errStyle.Render("The analysis request timed out.")
	default:
		return helpStyle.Render("press a to analyze")
	}
}
