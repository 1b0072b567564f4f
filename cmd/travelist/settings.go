package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/travelist/internal/catalog"
	"github.com/muurk/travelist/internal/config"
	"github.com/muurk/travelist/internal/discovery"
	"github.com/muurk/travelist/internal/logging"
	"github.com/muurk/travelist/internal/stream"
)

// settings is the configuration file overlaid with TRAVELIST_* variables
// and then with any flags given on the command line. The overrides live in
// prefs only; registry holds what the file says and is safe to save.
type settings struct {
	registry *config.Registry
	path     string
	prefs    *config.Preferences
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	path := configPath
	var (
		registry *config.Registry
		err      error
	)
	if path == "" {
		if path, err = config.GetConfigPath(); err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		registry, err = config.LoadRegistry()
	} else {
		registry, err = config.LoadRegistryFrom(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	prefs, err := registry.EffectivePreferences()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		prefs.LogLevel = logLevel
	}
	if flags.Changed("catalog") {
		prefs.CatalogFile = catalogPath
	}
	if flags.Changed("fault-policy") {
		prefs.FaultPolicy = faultPolicy
	}
	if flags.Changed("index-policy") {
		prefs.IndexPolicy = indexPolicy
	}
	if flags.Changed("queue-size") {
		prefs.QueueSize = queueSize
	}

	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	return &settings{registry: registry, path: path, prefs: prefs}, nil
}

// catalogSource returns the catalog the preferences point at.
func (s *settings) catalogSource() catalog.Source {
	if s.prefs.CatalogFile == "" {
		return catalog.Static{}
	}
	return catalog.File{Path: s.prefs.CatalogFile}
}

// initLogging sends logs to the configured file, or to fallback when no
// file is configured. An empty level keeps logging silent.
func (s *settings) initLogging(fallback string) error {
	output := s.prefs.LogFile
	if output == "" {
		output = fallback
	}
	if s.prefs.LogLevel != "" {
		if err := ensureLogDir(output); err != nil {
			return err
		}
	}
	if err := logging.InitializeWithOutput(s.prefs.LogLevel, output); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

// ensureLogDir creates the directory of a log file path. zap opens the
// file but does not create missing directories.
func ensureLogDir(output string) error {
	if output == "stdout" || output == "stderr" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(output), 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

// defaultLogFile is where the full-screen browser logs when no file is set.
func (s *settings) defaultLogFile() string {
	return filepath.Join(filepath.Dir(s.path), "travelist.log")
}

// resolveRemote turns a --remote value into a WebSocket URL. It accepts a
// ws:// URL, a remembered server name, host:port, or an mDNS instance name.
func resolveRemote(ctx context.Context, registry *config.Registry, target string, scanner *discovery.Scanner) (string, error) {
	if strings.HasPrefix(target, "ws://") || strings.HasPrefix(target, "wss://") {
		return target, nil
	}

	if srv := registry.GetServer(target); srv != nil {
		return "ws://" + srv.Addr + stream.PathWebSocket, nil
	}

	if _, _, err := net.SplitHostPort(target); err == nil {
		return "ws://" + target + stream.PathWebSocket, nil
	}

	if scanner == nil {
		return "", fmt.Errorf("unknown stream server %q", target)
	}
	ep, err := scanner.Find(ctx, target)
	if err != nil {
		return "", err
	}
	return ep.URL(), nil
}
