// Travelist browses countries and their tourist places.
//
// The default command opens an interactive screen backed by a local state
// holder. The same screen can be served to remote terminals over WebSocket,
// announced on the local network with mDNS, and browsed from another
// machine.
//
// Usage:
//
//	travelist [command] [flags]
//
// Running without arguments launches the interactive screen.
// See 'travelist --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/muurk/travelist/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Persistent flags
var (
	configPath  string
	catalogPath string
	logLevel    string
	faultPolicy string
	indexPolicy string
	queueSize   int
)

var rootCmd = &cobra.Command{
	Use:   "travelist",
	Short: "Browse countries and their tourist places",
	Long: `Travelist shows a catalog of countries and their tourist places.

Swipe between places, jump to a place by number, or pick another country.
The screen can run locally, or be served to other terminals over WebSocket.

If no command is specified, the interactive screen launches automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: browse when no subcommand provided
		return runBrowse(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	addSettingsFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(versionCmd)
}

// addSettingsFlags registers the flags that override preferences.
func addSettingsFlags(flags *pflag.FlagSet) {
	flags.StringVar(&configPath, "config", "", "Configuration file (default: OS config directory)")
	flags.StringVar(&catalogPath, "catalog", "", "YAML catalog file (default: built-in catalog)")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error; empty = silent)")
	flags.StringVar(&faultPolicy, "fault-policy", "", "What a rejected action does: ignore or error")
	flags.StringVar(&indexPolicy, "index-policy", "", "Index bounds checking: unchecked or reject")
	flags.IntVar(&queueSize, "queue-size", 0, "Pending actions per screen")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "travelist "+version.Full())
	},
}
