// Package config stores travelist's user configuration.
//
// A single YAML file holds two sections: preferences for the listing screen,
// the stream server and logging, and the stream servers that 'travelist
// scan' has found. The file lives in the user's config directory:
//
//   - $XDG_CONFIG_HOME/travelist/config.yaml when XDG_CONFIG_HOME is set
//   - $HOME/.config/travelist/config.yaml on Linux and macOS otherwise
//   - %LOCALAPPDATA%\travelist\config.yaml on Windows
//
// Settings resolve in three layers. The file is read first, then any
// TRAVELIST_* environment variable replaces its field, and the command line
// has the last word:
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    return err
//	}
//	prefs, err := registry.EffectivePreferences() // TRAVELIST_* applied to a copy
//	if err != nil {
//	    return err
//	}
//	opts, err := prefs.HolderOptions()
//
// Found servers are remembered with UpdateServerLastSeen and written back
// with Save, which replaces the file atomically.
package config
