package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header is the banner printed before a command's output: an upper-cased
// title, the command line, and an optional block of parameters.
type Header struct {
	Title   string
	Command string
	Params  map[string]string
	Width   int
}

// NewHeader returns a header sized to the terminal.
func NewHeader(title, command string, params map[string]string) *Header {
	return &Header{Title: title, Command: command, Params: params, Width: GetTerminalWidth()}
}

// SetWidth overrides the terminal width.
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render draws the banner. Parameters are listed in key order below a divider.
func (h *Header) Render() string {
	width := max(h.Width, MinTerminalWidth)
	frame := boxStyle(lipgloss.RoundedBorder(), AccentColor, width, 0)

	blocks := []string{
		bannerTitle.Render(strings.ToUpper(h.Title)),
		bannerCommand.Render(h.Command),
	}

	if len(h.Params) > 0 {
		blocks = append(blocks, RenderHorizontalDivider(max(width-6, 10), "─"))
		for _, key := range sortedKeys(h.Params) {
			blocks = append(blocks, bannerKey.Render(key+":")+" "+text.Render(h.Params[key]))
		}
	}

	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

func (h *Header) String() string {
	return h.Render()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
