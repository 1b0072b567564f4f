package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/travelist/internal/catalog"
)

// RenderCatalog renders each country as a titled block listing its places.
func RenderCatalog(countries []catalog.Country, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var b strings.Builder
	for _, c := range countries {
		title := countryName.Render(fmt.Sprintf("%s (%d places)", c.Name, c.Len()))
		b.WriteString(title)
		b.WriteString("\n")
		b.WriteString(RenderHorizontalDivider(width-2, "─"))
		b.WriteString("\n")

		for i, place := range c.TouristPlaces {
			b.WriteString(RenderPlace(i, place, width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPlace renders a single place with its position in the country.
func RenderPlace(index int, place catalog.TouristPlace, width int) string {
	body := lipgloss.NewStyle().PaddingLeft(5).Width(width - 2)

	lines := []string{
		placeName.Render(fmt.Sprintf("  %2d. %s", index+1, place.Name)),
		body.Inherit(placeSummary).Render(place.ShortDescription),
	}
	for _, img := range place.Images {
		lines = append(lines, body.Inherit(imageLink).Render(img))
	}
	return strings.Join(lines, "\n")
}
