package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/muurk/travelist/internal/catalog"
	"github.com/muurk/travelist/internal/config"
	"github.com/muurk/travelist/internal/logging"
	"github.com/muurk/travelist/internal/version"
)

func testCountries() []catalog.Country {
	return []catalog.Country{
		{Name: "Italy", TouristPlaces: []catalog.TouristPlace{
			{Name: "Colosseum", ShortDescription: "Amphitheatre"},
			{Name: "Venice", ShortDescription: "Canals"},
		}},
		{Name: "Japan", TouristPlaces: []catalog.TouristPlace{
			{Name: "Kyoto", ShortDescription: "Temples"},
		}},
	}
}

func TestWriteCatalog_Formats(t *testing.T) {
	t.Run("yaml round trips through Parse", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeCatalog(&buf, testCountries(), formatYAML, "test"); err != nil {
			t.Fatalf("writeCatalog() error = %v", err)
		}
		parsed, err := catalog.Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if len(parsed) != 2 || parsed[1].Name != "Japan" {
			t.Errorf("Parse() = %v", catalog.Names(parsed))
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeCatalog(&buf, testCountries(), formatJSON, "test"); err != nil {
			t.Fatalf("writeCatalog() error = %v", err)
		}
		var decoded []catalog.Country
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
		}
		if decoded[0].TouristPlaces[1].Name != "Venice" {
			t.Errorf("decoded = %+v", decoded)
		}
	})

	t.Run("styled", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeCatalog(&buf, testCountries(), formatStyled, "built-in"); err != nil {
			t.Fatalf("writeCatalog() error = %v", err)
		}
		out := buf.String()
		for _, want := range []string{"CATALOG", "built-in", "Italy, Japan", "Colosseum", "Kyoto"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q", want)
			}
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := writeCatalog(&bytes.Buffer{}, testCountries(), "xml", "test"); err == nil {
			t.Error("writeCatalog() should reject unknown formats")
		}
	})
}

func TestWriteConfig(t *testing.T) {
	registry := config.NewRegistry()
	registry.UpdateServerLastSeen("living-room", "192.168.1.20:8765", "v0.3.0")

	var buf bytes.Buffer
	if err := writeConfig(&buf, registry, "/tmp/config.yaml", formatStyled); err != nil {
		t.Fatalf("writeConfig() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"fault_policy", "ignore", "living-room", "192.168.1.20:8765"} {
		if !strings.Contains(out, want) {
			t.Errorf("styled output missing %q", want)
		}
	}

	buf.Reset()
	if err := writeConfig(&buf, registry, "", formatYAML); err != nil {
		t.Fatalf("writeConfig(yaml) error = %v", err)
	}
	if !strings.Contains(buf.String(), "listen_addr:") || !strings.Contains(buf.String(), "living-room:") {
		t.Errorf("yaml output = %s", buf.String())
	}
}

func TestResolveRemote(t *testing.T) {
	registry := config.NewRegistry()
	registry.UpdateServerLastSeen("living-room", "192.168.1.20:8765", "")

	tests := []struct {
		name    string
		target  string
		want    string
		wantErr bool
	}{
		{"url", "ws://example.com:9000/ws", "ws://example.com:9000/ws", false},
		{"secure url", "wss://example.com/ws", "wss://example.com/ws", false},
		{"remembered server", "living-room", "ws://192.168.1.20:8765/ws", false},
		{"host and port", "10.0.0.5:8765", "ws://10.0.0.5:8765/ws", false},
		{"unknown name without scanner", "kitchen", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveRemote(context.Background(), registry, tt.target, nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveRemote() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveRemote() = %q, want %q", got, tt.want)
			}
		})
	}
}

// newSettingsCommand returns a command with fresh settings flags parsed
// from args, so Changed state does not leak between tests.
func newSettingsCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	t.Cleanup(func() {
		configPath, catalogPath, logLevel = "", "", ""
		faultPolicy, indexPolicy, queueSize = "", "", 0
	})

	cmd := &cobra.Command{Use: "test"}
	addSettingsFlags(cmd.Flags())
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	return cmd
}

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettings_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, `version: 1
preferences:
  queue_size: 32
  fault_policy: error
  index_policy: reject
  listen_addr: ":9000"
  scan_timeout: 2
`)

	t.Setenv("TRAVELIST_LISTEN_ADDR", ":9100")
	t.Setenv("TRAVELIST_QUEUE_SIZE", "64")

	cmd := newSettingsCommand(t, "--config", path, "--queue-size", "4")
	s, err := loadSettings(cmd)
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}

	if s.path != path {
		t.Errorf("path = %q, want %q", s.path, path)
	}
	if s.prefs.FaultPolicy != "error" {
		t.Errorf("FaultPolicy = %q, want file value", s.prefs.FaultPolicy)
	}
	if s.prefs.ListenAddr != ":9100" {
		t.Errorf("ListenAddr = %q, want env value", s.prefs.ListenAddr)
	}
	if s.prefs.QueueSize != 4 {
		t.Errorf("QueueSize = %d, want flag value", s.prefs.QueueSize)
	}
	if _, ok := s.catalogSource().(catalog.Static); !ok {
		t.Errorf("catalogSource() = %T, want catalog.Static", s.catalogSource())
	}
	if got := s.defaultLogFile(); got != filepath.Join(dir, "travelist.log") {
		t.Errorf("defaultLogFile() = %q", got)
	}
}

func TestLoadSettings_OverridesAreNotSaved(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), `version: 1
preferences:
  queue_size: 16
  fault_policy: ignore
  index_policy: unchecked
  listen_addr: ":8765"
  scan_timeout: 5
`)
	t.Setenv("TRAVELIST_LISTEN_ADDR", ":9100")

	cmd := newSettingsCommand(t, "--config", path, "--fault-policy", "error", "--catalog", "/tmp/other.yaml")
	s, err := loadSettings(cmd)
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}
	if s.prefs.FaultPolicy != "error" || s.prefs.ListenAddr != ":9100" {
		t.Fatalf("effective prefs = %+v, want overrides applied", *s.prefs)
	}

	// What scan does after finding a server
	s.registry.UpdateServerLastSeen("kitchen", "10.0.0.5:8765", "")
	if err := s.registry.SaveTo(s.path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	saved, err := config.LoadRegistryFrom(path)
	if err != nil {
		t.Fatalf("LoadRegistryFrom() error = %v", err)
	}
	prefs := saved.Preferences
	if prefs.FaultPolicy != "ignore" {
		t.Errorf("saved fault_policy = %q, want ignore", prefs.FaultPolicy)
	}
	if prefs.ListenAddr != ":8765" {
		t.Errorf("saved listen_addr = %q, want :8765", prefs.ListenAddr)
	}
	if prefs.CatalogFile != "" {
		t.Errorf("saved catalog_file = %q, want empty", prefs.CatalogFile)
	}
	if saved.GetServer("kitchen") == nil {
		t.Error("found server was not saved")
	}
}

func TestInitLogging_CreatesLogDirectory(t *testing.T) {
	t.Cleanup(logging.Sync)

	dir := filepath.Join(t.TempDir(), "never-created")
	s := &settings{
		path:  filepath.Join(dir, "config.yaml"),
		prefs: config.NewPreferences(),
	}
	s.prefs.LogLevel = "debug"

	if err := s.initLogging(s.defaultLogFile()); err != nil {
		t.Fatalf("initLogging() error = %v", err)
	}
	logging.Info("browse started")
	logging.Sync()

	if _, err := os.Stat(filepath.Join(dir, "travelist.log")); err != nil {
		t.Errorf("log file not created: %v", err)
	}
	_ = logging.InitializeWithOutput("", "")
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)

	if got, want := strings.TrimSpace(buf.String()), "travelist "+version.Full(); got != want {
		t.Errorf("version output = %q, want %q", got, want)
	}
}
