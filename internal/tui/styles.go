package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/travelist/internal/version"
)

const (
	AppName   = "TRAVELIST"
	GitHubURL = "github.com/muurk/travelist"

	MinTerminalWidth  = 72
	MinTerminalHeight = 20

	// Columns taken by the outer border and padding of the frame
	frameInset = 4
)

var (
	AccentColor    = lipgloss.Color("#7D56F4")
	HighlightColor = lipgloss.Color("#43BF6D")
	WarningColor   = lipgloss.Color("#FFA500")
	ErrorColor     = lipgloss.Color("#FF0000")
	TextColor      = lipgloss.Color("#FFFFFF")
	SubtleColor    = lipgloss.Color("#626262")
)

var (
	TitleStyle    = lipgloss.NewStyle().Foreground(AccentColor).Bold(true)
	SubtitleStyle = lipgloss.NewStyle().Foreground(SubtleColor).Italic(true)
	TextStyle     = lipgloss.NewStyle().Foreground(TextColor)
	SpinnerStyle  = lipgloss.NewStyle().Foreground(AccentColor)
	WarningStyle  = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor)

	// Country tabs above the place card
	TabStyle       = lipgloss.NewStyle().Foreground(SubtleColor).Padding(0, 1)
	ActiveTabStyle = TabStyle.Foreground(HighlightColor).Bold(true).Underline(true)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(AccentColor).
			Padding(1, 2)
)

func RenderError(msg string) string {
	return ErrorStyle.Render("✗ " + msg)
}

func RenderWarning(msg string) string {
	return WarningStyle.Render("⚠ " + msg)
}

// renderFrame fills the terminal with a bordered frame: the application
// name and version on top, content in the middle and help at the bottom.
func renderFrame(content, help string, width, height int) string {
	width = max(width, MinTerminalWidth)
	height = max(height, MinTerminalHeight)
	inner := width - frameInset

	rule := func(b lipgloss.Border) lipgloss.Style {
		return lipgloss.NewStyle().
			BorderStyle(b).
			BorderForeground(AccentColor).
			Width(inner).
			Padding(0, 1)
	}

	brand := lipgloss.JoinHorizontal(lipgloss.Top,
		TextStyle.Bold(true).Render(AppName+" "+version.Version),
		" ",
		lipgloss.NewStyle().Foreground(SubtleColor).Render(GitHubURL),
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		rule(lipgloss.Border{Bottom: "─"}).Render(brand),
		lipgloss.NewStyle().Width(inner).Render(content),
		rule(lipgloss.Border{Top: "─"}).Render(lipgloss.NewStyle().Foreground(SubtleColor).Render(help)),
	)

	framed := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(AccentColor).
		Width(width - 2).
		Height(height - 2).
		Render(body)

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, framed)
}

// contentWidth is the usable width inside the frame.
func contentWidth(terminalWidth int) int {
	return max(terminalWidth, MinTerminalWidth) - frameInset
}
