package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muurk/travelist/internal/catalog"
)

func TestHeaderRender(t *testing.T) {
	out := NewHeader("Catalog", "travelist catalog", map[string]string{
		"Source":    "built-in",
		"Countries": "2",
	}).SetWidth(80).Render()

	for _, want := range []string{"CATALOG", "travelist catalog", "Source:", "built-in"} {
		if !strings.Contains(out, want) {
			t.Errorf("Header.Render() missing %q", want)
		}
	}

	// Params are sorted so output is stable
	if strings.Index(out, "Countries:") > strings.Index(out, "Source:") {
		t.Error("Header.Render() should list params in key order")
	}
}

func TestHeaderWithoutParams(t *testing.T) {
	out := NewHeader("Version", "travelist version", nil).SetWidth(10).Render()
	if !strings.Contains(out, "VERSION") {
		t.Errorf("Header.Render() = %q, missing title", out)
	}
	if strings.Contains(out, ":") {
		t.Error("Header.Render() should not draw a params section without params")
	}
}

func TestResultRender(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "success",
			result: NewSuccessResult("Configuration written", map[string]string{"Path": "/tmp/config.yaml"}),
			want:   []string{SuccessMarker, "SUCCESS", "Configuration written", "/tmp/config.yaml"},
		},
		{
			name:   "warning",
			result: NewWarningResult("No servers found", nil).AddDetail("Timeout", "5s"),
			want:   []string{WarningMarker, "WARNING", "No servers found", "5s"},
		},
		{
			name:   "failure",
			result: NewFailureResult("Catalog invalid", errors.New("duplicate country"), []string{"Check the file"}),
			want:   []string{FailureMarker, "FAILED", "duplicate country", "Troubleshooting:", "Check the file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.result.SetWidth(80).Render()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("Render() missing %q in:\n%s", want, out)
				}
			}
		})
	}
}

func TestRenderCatalog(t *testing.T) {
	out := RenderCatalog(catalog.Default(), 100)

	for _, want := range []string{"Japan (4 places)", "South Korea (2 places)", "1. Tokyo", "4. Tokyo 3", "2. Korea 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderCatalog() missing %q", want)
		}
	}
	if strings.Index(out, "Japan") > strings.Index(out, "South Korea") {
		t.Error("RenderCatalog() should keep catalog order")
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "ADDRESS"},
		[][]string{
			{"living-room", "192.168.1.20:8765"},
			{"k", "10.0.0.5:8765"},
			{"short-row"},
		},
	)

	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("RenderTable() produced %d lines, want 4:\n%s", len(lines), out)
	}

	col := strings.Index(lines[0], "ADDRESS")
	if got := strings.Index(lines[1], "192.168.1.20"); got != col {
		t.Errorf("second column starts at %d, want %d", got, col)
	}
	if got := strings.Index(lines[2], "10.0.0.5"); got != col {
		t.Errorf("second column starts at %d, want %d", got, col)
	}
	if strings.HasSuffix(lines[3], " ") {
		t.Error("RenderTable() should trim trailing padding")
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"yes", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			got := Confirm(strings.NewReader(tt.input), &out, "Overwrite config", []string{"The file exists"})
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "Overwrite config") {
				t.Error("Confirm() should print the warning title")
			}
		})
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).WithWidth(20)

	if p.Width() != MinTerminalWidth {
		t.Errorf("Width() = %d, want clamp to %d", p.Width(), MinTerminalWidth)
	}

	p.PrintSuccess("Done", nil)
	p.PrintTable([]string{"KEY"}, [][]string{{"value"}})

	out := buf.String()
	if !strings.Contains(out, "Done") || !strings.Contains(out, "value") {
		t.Errorf("Printer output missing content:\n%s", out)
	}
}
