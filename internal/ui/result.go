package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType selects the colour, marker and label of a result box.
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

type resultLook struct {
	marker string
	label  string
	color  lipgloss.Color
}

var resultLooks = map[ResultType]resultLook{
	ResultSuccess: {SuccessMarker, "SUCCESS", SuccessColor},
	ResultFailure: {FailureMarker, "FAILED", ErrorColor},
	ResultWarning: {WarningMarker, "WARNING", WarningColor},
}

// Result is the box that closes a command's output. Success and warning
// boxes list Details; failure boxes show Error and Troubleshooting tips.
type Result struct {
	Type            ResultType
	Title           string
	Details         map[string]string
	Error           error
	Troubleshooting []string
	Width           int
}

func NewSuccessResult(title string, details map[string]string) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details, Width: GetTerminalWidth()}
}

func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

func NewWarningResult(title string, details map[string]string) *Result {
	return &Result{Type: ResultWarning, Title: title, Details: details, Width: GetTerminalWidth()}
}

// SetWidth overrides the terminal width.
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail sets one key/value line.
func (r *Result) AddDetail(key, value string) *Result {
	if r.Details == nil {
		r.Details = make(map[string]string)
	}
	r.Details[key] = value
	return r
}

func (r *Result) Render() string {
	width := max(r.Width, MinTerminalWidth)
	look := resultLooks[r.Type]
	heading := titleLine(lipgloss.NewStyle().Foreground(look.color).Bold(true), look.marker, look.label, r.Title)

	lines := []string{"", heading, ""}
	if r.Type == ResultFailure {
		lines = append(lines, r.failureLines(width)...)
	} else {
		for _, key := range sortedKeys(r.Details) {
			lines = append(lines, detailKey.Render("   "+key+":")+" "+text.Render(r.Details[key]))
		}
		lines = append(lines, "")
	}

	return boxStyle(lipgloss.DoubleBorder(), look.color, width, 2).Render(strings.Join(lines, "\n"))
}

func (r *Result) String() string {
	return r.Render()
}

func (r *Result) failureLines(width int) []string {
	var lines []string
	if r.Error != nil {
		lines = append(lines, errorText.Render("   Error: "+r.Error.Error()), "")
	}
	if len(r.Troubleshooting) == 0 {
		return lines
	}

	tips := []string{tipsTitle.Render("Troubleshooting:"), ""}
	for _, tip := range r.Troubleshooting {
		tips = append(tips, muted.Render("  "+BulletMarker+" "+tip))
	}
	// Nested inside the failure box, so narrower than it
	inner := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(width-8).
		Padding(0, 1)
	return append(lines, inner.Render(strings.Join(tips, "\n")), "")
}
