package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/travelist/internal/discovery"
	"github.com/muurk/travelist/internal/listing"
	"github.com/muurk/travelist/internal/logging"
	"github.com/muurk/travelist/internal/stream"
	"github.com/muurk/travelist/internal/tui"
)

// Browse command flags
var (
	browseRemote  string
	browseTimeout time.Duration
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive listing screen",
	Long: `Open the full-screen listing of countries and tourist places.

By default the screen runs against a local state holder loaded from the
configured catalog. With --remote the screen is driven by a stream server
instead; every action is sent to the server and every state comes back
from it.

The --remote value may be a ws:// URL, host:port, a server name remembered
by 'travelist scan', or an mDNS instance name on the local network.

Logs never go to the terminal while the screen is open. Set --log-level
(or log_level in the configuration file) to write them to log_file, or to
travelist.log next to the configuration file.

Keys:
  ←/h →/l   previous or next place
  1-9       jump to a place
  c         choose a country
  ?         help
  q         quit`,
	Example: `  # Browse the built-in catalog
  travelist browse

  # Browse your own catalog with strict index checks
  travelist browse --catalog ./places.yaml --index-policy reject

  # Browse a screen served by another machine
  travelist browse --remote living-room
  travelist browse --remote ws://192.168.1.20:8765/ws`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseRemote, "remote", "", "Stream server to browse (URL, host:port or server name)")
	browseCmd.Flags().DurationVar(&browseTimeout, "timeout", 10*time.Second, "Time allowed to reach a remote server")

	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := s.initLogging(s.defaultLogFile()); err != nil {
		return err
	}
	defer logging.Sync()

	ctx := cmd.Context()

	if browseRemote != "" {
		dialCtx, cancel := context.WithTimeout(ctx, browseTimeout)
		defer cancel()

		scanner := discovery.NewScanner()
		scanner.Timeout = time.Duration(s.prefs.ScanTimeout) * time.Second
		url, err := resolveRemote(dialCtx, s.registry, browseRemote, scanner)
		if err != nil {
			return fmt.Errorf("failed to resolve %q: %w", browseRemote, err)
		}

		client, err := stream.Dial(dialCtx, url)
		if err != nil {
			return err
		}
		defer client.Close()

		logging.Info("Browsing remote screen", zap.String("url", url))
		err = tui.Run(ctx, client)
		if errors.Is(err, tui.ErrStreamClosed) {
			return fmt.Errorf("server %s closed the screen", url)
		}
		return err
	}

	opts, err := s.prefs.HolderOptions()
	if err != nil {
		return err
	}
	holder := listing.NewHolder(s.catalogSource(), append(opts, listing.WithSession("local"))...)
	holder.Start(ctx)
	defer holder.Close()

	err = tui.Run(ctx, holder)
	if errors.Is(err, tui.ErrStreamClosed) {
		return nil
	}
	return err
}
