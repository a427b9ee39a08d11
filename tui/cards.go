package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tripchat/destinations"
	"tripchat/flights"
)

// RenderSummary renders a search result as a headline and one card per
// offer.
func RenderSummary(s flights.Summary) string {
	switch s.Kind {
	case flights.KindError:
		return errorStyle.Render(s.Headline())
	case flights.KindEmpty:
		return dimStyle.Render(s.Headline())
	}

	blocks := []string{titleStyle.Render(s.Headline())}
	for _, c := range s.Cards {
		blocks = append(blocks, renderCard(c))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderCard(c flights.Card) string {
	lines := []string{
		priceStyle.Render(c.Price) + "  " + c.Airline,
	}
	if c.Codes != "" {
		lines = append(lines, dimStyle.Render(c.Codes))
	}
	lines = append(lines, renderLeg("Outbound", c.Outbound))
	if c.Inbound != nil {
		lines = append(lines, renderLeg("Return", *c.Inbound))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func renderLeg(label string, l flights.LegView) string {
	return label + ": " + l.Route + "\n  " + l.Time + "\n  " + dimStyle.Render(l.Meta)
}

// RenderDestinations lists the grid, marking favorites.
func RenderDestinations(cards []destinations.Card) string {
	lines := make([]string, 0, len(cards))
	for _, c := range cards {
		if c.Favorited {
			lines = append(lines, favoriteStyle.Render("♥ "+c.Name))
		} else {
			lines = append(lines, "  "+c.Name)
		}
	}
	return strings.Join(lines, "\n")
}
