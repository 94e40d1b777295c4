package tui

import (
	"fmt"
	"strings"

	"github.com/currencydash/anchor/internal/education"

	"github.com/charmbracelet/lipgloss"
)

// EndpointsDeck renders the documented backend API contract.
type EndpointsDeck struct{}

// NewEndpointsDeck creates the endpoints deck.
func NewEndpointsDeck() *EndpointsDeck {
	return &EndpointsDeck{}
}

func (d *EndpointsDeck) ID() string    { return "endpoints" }
func (d *EndpointsDeck) Title() string { return "Endpoints" }

func (d *EndpointsDeck) Render(_ ViewContext, width int, active bool) string {
	style := sectionStyle.Width(width)
	if active {
		style = activeSectionStyle.Width(width)
	}

	docs := education.EndpointDocs()

	var lines []string
	lines = append(lines, labelStyle.Render(fmt.Sprintf("%-28s %-34s %s", "Endpoint", "Description", "Status")))
	for _, doc := range docs {
		endpoint := okStyle.Render(fmt.Sprintf("%-28s", doc.Endpoint))
		if strings.HasPrefix(doc.Endpoint, "POST") {
			endpoint = warnStyle.Render(fmt.Sprintf("%-28s", doc.Endpoint))
		}
		lines = append(lines, fmt.Sprintf("%s %-34s %s", endpoint, doc.Description, helpStyle.Render(doc.StatusCodes)))
	}

	title := deckTitleStyle.Render("Backend API")
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n")))
}
