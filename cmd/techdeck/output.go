package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vansh-app/techdeck/pkg/techdeck/deck"
	"github.com/vansh-app/techdeck/pkg/techdeck/models"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C49734"))
	indexStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C681A")).Width(4)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6B65"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2962FF"))
)

// toJSON serializes the summary, indented when pretty is set.
func toJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// renderSummary formats a deck summary for the terminal.
func renderSummary(s *models.DeckSummary) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(s.FileName))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %.3fin x %.3fin, %d slides, %d shapes",
		deck.ToInches(s.Width), deck.ToInches(s.Height), len(s.Slides), s.ShapeCount())))
	b.WriteString("\n")

	for _, slide := range s.Slides {
		title := strings.SplitN(slide.Title, "\n", 2)[0]
		b.WriteString(indexStyle.Render(fmt.Sprintf("%d.", slide.Index)))
		b.WriteString(title)
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  (%d shapes, %d pictures)", len(slide.Shapes), slide.Pictures)))
		b.WriteString("\n")
		for _, name := range slide.Placeholders {
			b.WriteString("    ")
			b.WriteString(missingStyle.Render("missing screenshot: " + name))
			b.WriteString("\n")
		}
	}

	return b.String()
}
