package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/travelist/internal/catalog"
	"github.com/muurk/travelist/internal/config"
	"github.com/muurk/travelist/internal/ui"
)

// Output formats shared by catalog and config show
const (
	formatStyled = "styled"
	formatYAML   = "yaml"
	formatJSON   = "json"
)

// Catalog command flags
var catalogFormat string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the catalog of countries and places",
	Long: `Print the catalog the listing screen would load.

The styled format is meant for reading. The yaml format can be edited and
passed back with --catalog; json suits scripts.`,
	Example: `  # Print the built-in catalog
  travelist catalog

  # Start a custom catalog from the built-in one
  travelist catalog --format yaml > places.yaml`,
	RunE: runCatalog,
}

// Config command flags
var (
	configForce      bool
	configShowFormat string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Long: `Manage the travelist configuration file.

Settings are resolved in order: the configuration file, then TRAVELIST_*
environment variables, then command-line flags.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with default values",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogFormat, "format", formatStyled, "Output format: styled, yaml or json")
	rootCmd.AddCommand(catalogCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file without asking")
	configShowCmd.Flags().StringVar(&configShowFormat, "format", formatStyled, "Output format: styled or yaml")
	configCmd.AddCommand(configInitCmd, configShowCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := s.initLogging("stderr"); err != nil {
		return err
	}

	countries, err := s.catalogSource().Countries(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	source := s.prefs.CatalogFile
	if source == "" {
		source = "built-in"
	}
	return writeCatalog(cmd.OutOrStdout(), countries, catalogFormat, source)
}

// writeCatalog prints countries in format.
func writeCatalog(w io.Writer, countries []catalog.Country, format, source string) error {
	switch format {
	case formatStyled:
		p := ui.NewPrinter(w)
		p.PrintHeader("CATALOG", "travelist catalog", map[string]string{
			"Source":    source,
			"Countries": strings.Join(catalog.Names(countries), ", "),
		})
		p.PrintCatalog(countries)
		return nil

	case formatYAML:
		data, err := catalog.Marshal(countries)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case formatJSON:
		data, err := json.MarshalIndent(countries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	default:
		return fmt.Errorf("unknown format %q (want styled, yaml or json)", format)
	}
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		ok := ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Overwrite configuration?", []string{
			path + " already exists",
			"Remembered servers will be forgotten",
		})
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	if err := config.CreateDefaultConfig(path); err != nil {
		return err
	}

	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Configuration written", map[string]string{
		"Path": path,
	})
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	return writeConfig(cmd.OutOrStdout(), s.registry, s.path, configShowFormat)
}

// writeConfig prints the effective registry in format.
func writeConfig(w io.Writer, registry *config.Registry, path, format string) error {
	switch format {
	case formatYAML:
		return yaml.NewEncoder(w).Encode(registry)

	case formatStyled:
		prefs := registry.Preferences
		p := ui.NewPrinter(w)
		p.PrintHeader("CONFIGURATION", "travelist config show", map[string]string{"Path": path})
		p.PrintTable([]string{"SETTING", "VALUE"}, [][]string{
			{"log_level", orNone(prefs.LogLevel)},
			{"log_file", orNone(prefs.LogFile)},
			{"catalog_file", orNone(prefs.CatalogFile)},
			{"queue_size", strconv.Itoa(prefs.QueueSize)},
			{"fault_policy", prefs.FaultPolicy},
			{"index_policy", prefs.IndexPolicy},
			{"listen_addr", prefs.ListenAddr},
			{"advertise", strconv.FormatBool(prefs.Advertise)},
			{"scan_timeout", strconv.Itoa(prefs.ScanTimeout) + "s"},
		})

		if len(registry.Servers) > 0 {
			names := make([]string, 0, len(registry.Servers))
			for name := range registry.Servers {
				names = append(names, name)
			}
			sort.Strings(names)

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				srv := registry.Servers[name]
				rows = append(rows, []string{name, srv.Addr, orNone(srv.Version), srv.LastSeen.Format("2006-01-02 15:04")})
			}
			p.Newline()
			p.PrintTable([]string{"SERVER", "ADDRESS", "VERSION", "LAST SEEN"}, rows)
		}
		return nil

	default:
		return fmt.Errorf("unknown format %q (want styled or yaml)", format)
	}
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
