package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable aligns rows into columns sized to their widest cell.
// Rows shorter than headers are padded with empty cells.
func RenderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var lines []string
	lines = append(lines, renderRow(headers, widths, columnTitle))
	for _, row := range rows {
		lines = append(lines, renderRow(row, widths, text))
	}
	return strings.Join(lines, "\n")
}

func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = style.Width(w).Render(cell)
	}
	return "  " + strings.TrimRight(strings.Join(parts, "  "), " ")
}
