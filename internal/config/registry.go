package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "travelist"
	configFile = "config.yaml"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error

	// Serializes writers and resets of the default registry
	saveMu sync.Mutex
)

// GetConfigDir returns the directory holding travelist's configuration.
//
// XDG_CONFIG_HOME wins on every platform but Windows. Otherwise Windows uses
// %LOCALAPPDATA%\travelist (falling back to %USERPROFILE%\AppData\Local)
// and everything else uses $HOME/.config/travelist.
func GetConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		if base := os.Getenv("LOCALAPPDATA"); base != "" {
			return filepath.Join(base, appName), nil
		}
		if profile := os.Getenv("USERPROFILE"); profile != "" {
			return filepath.Join(profile, "AppData", "Local", appName), nil
		}
		return "", errors.New("cannot locate config directory: LOCALAPPDATA and USERPROFILE are unset")
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// LoadRegistry returns the registry stored at GetConfigPath. The file is
// read once per process; later calls share the result.
func LoadRegistry() (*Registry, error) {
	defaultOnce.Do(func() {
		path, err := GetConfigPath()
		if err != nil {
			defaultErr = fmt.Errorf("failed to get config path: %w", err)
			return
		}
		defaultRegistry, defaultErr = LoadRegistryFrom(path)
	})
	return defaultRegistry, defaultErr
}

// ReloadRegistry drops the shared registry and reads the file again.
func ReloadRegistry() (*Registry, error) {
	saveMu.Lock()
	defaultOnce = sync.Once{}
	saveMu.Unlock()
	return LoadRegistry()
}

// LoadRegistryFrom reads the registry at path. A missing file is not an
// error: it yields NewRegistry. Sections absent from the file get defaults.
func LoadRegistryFrom(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NewRegistry(), nil
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	registry := &Registry{}
	if err := yaml.Unmarshal(data, registry); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if registry.Version != 1 {
		return nil, fmt.Errorf("unsupported config version: %d (expected 1)", registry.Version)
	}

	if registry.Preferences == nil {
		registry.Preferences = NewPreferences()
	}
	if registry.Servers == nil {
		registry.Servers = make(map[string]*Server)
	}
	return registry, nil
}

// EffectivePreferences returns a copy of the stored preferences with any
// TRAVELIST_* variables overlaid. The registry itself keeps the file's
// values, so saving it never persists an override.
func (r *Registry) EffectivePreferences() (*Preferences, error) {
	prefs := *NewPreferences()
	if r.Preferences != nil {
		prefs = *r.Preferences
	}
	if err := env.Parse(&prefs); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &prefs, nil
}

// Save writes the registry to GetConfigPath.
func (r *Registry) Save() error {
	path, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return r.SaveTo(path)
}

const fileHeader = `# travelist configuration file
# Preferences for the listing screen, the stream server and logging.
# Every preference can be overridden by its TRAVELIST_* environment variable.
#
`

// SaveTo writes the registry to path through a temporary file in the same
// directory, so readers never see a partial file. The file is private to
// the user (0600) and so is a newly created directory (0700).
func (r *Registry) SaveTo(path string) error {
	saveMu.Lock()
	defer saveMu.Unlock()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+configFile+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary config file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := fmt.Fprintf(tmp, "%s# Location: %s\n\n", fileHeader, path); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	enc := yaml.NewEncoder(tmp)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to save config file: %w", err)
	}
	return nil
}

// CreateDefaultConfig writes a registry with default values to path,
// replacing any file already there.
func CreateDefaultConfig(path string) error {
	return NewRegistry().SaveTo(path)
}
