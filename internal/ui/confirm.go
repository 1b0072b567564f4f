package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var prompt = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)

// Confirm displays a warning box on w and asks the user to answer "y" or
// "yes" on r. Returns true only for an explicit yes.
func Confirm(r io.Reader, w io.Writer, title string, warnings []string) bool {
	width := GetTerminalWidth()

	lines := []string{
		"",
		titleLine(prompt, WarningMarker, "WARNING", title),
		"",
	}
	for _, warning := range warnings {
		lines = append(lines, text.Render("   "+BulletMarker+" "+warning))
	}
	lines = append(lines, "")

	_, _ = fmt.Fprintln(w, boxStyle(lipgloss.DoubleBorder(), WarningColor, width, 2).Render(strings.Join(lines, "\n")))
	_, _ = fmt.Fprint(w, prompt.Render("Continue? [y/N]: "))

	input, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && input == "" {
		_, _ = fmt.Fprintln(w)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	default:
		_, _ = fmt.Fprintln(w, muted.Render("  Operation cancelled."))
		return false
	}
}
