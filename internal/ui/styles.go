package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette
var (
	AccentColor  = lipgloss.Color("#7D56F4")
	SuccessColor = lipgloss.Color("#43BF6D")
	ErrorColor   = lipgloss.Color("#FF5555")
	WarningColor = lipgloss.Color("#FFA500")
	MutedColor   = lipgloss.Color("#626262")
	TextColor    = lipgloss.Color("#FFFFFF")
)

const (
	MinTerminalWidth = 60
	MaxContentWidth  = 100

	fallbackHeight = 24
)

// Markers prefix result titles and list items.
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "⚠"
	BulletMarker  = "•"
)

var (
	text  = lipgloss.NewStyle().Foreground(TextColor)
	muted = lipgloss.NewStyle().Foreground(MutedColor)

	bannerTitle   = text.Bold(true).PaddingLeft(2)
	bannerCommand = muted.PaddingLeft(2)
	bannerKey     = muted.PaddingLeft(2)
	detailKey     = muted.Width(15)
	errorText     = lipgloss.NewStyle().Foreground(ErrorColor)
	tipsTitle     = muted.Bold(true)

	countryName  = lipgloss.NewStyle().Foreground(AccentColor).Bold(true)
	placeName    = text.Bold(true)
	placeSummary = muted
	imageLink    = muted.Italic(true)
	columnTitle  = lipgloss.NewStyle().Foreground(AccentColor).Bold(true)
)

// GetTerminalWidth returns the width of stdout clamped to
// [MinTerminalWidth, MaxContentWidth].
func GetTerminalWidth() int {
	width, _ := GetTerminalSize()
	return width
}

// GetTerminalSize returns the size of stdout. When stdout is not a terminal
// it reports MinTerminalWidth by 24 rows.
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, fallbackHeight
	}
	return clampWidth(width), height
}

func clampWidth(width int) int {
	switch {
	case width < MinTerminalWidth:
		return MinTerminalWidth
	case width > MaxContentWidth:
		return MaxContentWidth
	default:
		return width
	}
}

// boxStyle frames content of the given total width, borders included.
func boxStyle(border lipgloss.Border, color lipgloss.Color, width, hpad int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(color).
		Width(width-2).
		Padding(0, hpad)
}

// RenderHorizontalDivider draws char repeated width times in the accent colour.
func RenderHorizontalDivider(width int, char string) string {
	if width < 0 {
		width = 0
	}
	return lipgloss.NewStyle().Foreground(AccentColor).Render(strings.Repeat(char, width))
}

// titleLine is the "marker  LABEL  ─  title" line opening every result box.
func titleLine(style lipgloss.Style, marker, label, title string) string {
	return style.Render("   " + marker + "  " + label + "  ─  " + title)
}
