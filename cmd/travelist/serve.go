package main

import (
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/travelist/internal/discovery"
	"github.com/muurk/travelist/internal/logging"
	"github.com/muurk/travelist/internal/stream"
	"github.com/muurk/travelist/internal/ui"
)

// Serve command flags
var (
	serveAddr      string
	serveAdvertise bool
	serveName      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve listing screens over WebSocket",
	Long: `Serve listing screens to remote terminals.

Every WebSocket connection on /ws gets its own screen state. The server
sends the current state when a client connects and every state after that;
clients send actions back. GET /healthz reports readiness.

With --advertise the server is announced on the local network as
_travelist._tcp so 'travelist scan' and 'travelist browse --remote <name>'
can find it.

Logs go to stderr at info level unless configured otherwise.`,
	Example: `  # Serve the built-in catalog on the default port
  travelist serve

  # Serve a custom catalog and announce it
  travelist serve --catalog ./places.yaml --advertise --name living-room`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from configuration, :8765)")
	serveCmd.Flags().BoolVar(&serveAdvertise, "advertise", false, "Announce the server via mDNS")
	serveCmd.Flags().StringVar(&serveName, "name", "", "mDNS instance name (default: hostname)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if s.prefs.LogLevel == "" {
		s.prefs.LogLevel = "info"
	}
	if err := s.initLogging("stderr"); err != nil {
		return err
	}
	defer logging.Sync()

	if cmd.Flags().Changed("addr") {
		s.prefs.ListenAddr = serveAddr
	}
	if cmd.Flags().Changed("advertise") {
		s.prefs.Advertise = serveAdvertise
	}

	opts, err := s.prefs.HolderOptions()
	if err != nil {
		return err
	}

	srv := stream.New(&stream.Config{
		Addr:          s.prefs.ListenAddr,
		Source:        s.catalogSource(),
		HolderOptions: opts,
	})
	if err := srv.Listen(); err != nil {
		return err
	}

	catalogName := s.prefs.CatalogFile
	if catalogName == "" {
		catalogName = "built-in"
	}
	params := map[string]string{
		"Address": srv.Addr().String(),
		"Catalog": catalogName,
	}

	ctx := cmd.Context()

	if s.prefs.Advertise {
		name, err := instanceName(serveName)
		if err != nil {
			return err
		}
		port := srv.Addr().(*net.TCPAddr).Port
		params["mDNS"] = name

		go func() {
			if err := discovery.Announce(ctx, name, port, discovery.TXTRecords(stream.PathWebSocket)); err != nil {
				logging.Error("mDNS announcement failed", zap.Error(err))
			}
		}()
	}

	ui.NewPrinter(cmd.OutOrStdout()).PrintHeader("STREAM SERVER", "travelist serve", params)

	return srv.Serve(ctx)
}

// instanceName returns name, or the hostname when name is empty.
func instanceName(name string) (string, error) {
	if name != "" {
		return name, nil
	}
	host, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("failed to get hostname (use --name): %w", err)
	}
	return host, nil
}
