package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/travelist/internal/discovery"
	"github.com/muurk/travelist/internal/logging"
	"github.com/muurk/travelist/internal/ui"
)

// Scan command flags
var (
	scanTimeout time.Duration
	scanNoSave  bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find stream servers on the local network",
	Long: `Browse the local network for travelist stream servers announced via mDNS.

Servers that answer are remembered in the configuration file so that
'travelist browse --remote <name>' can reach them later without scanning.`,
	Example: `  # Scan with the configured timeout
  travelist scan

  # Scan longer without touching the configuration file
  travelist scan --timeout 15s --no-save`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 0, "How long to wait for answers (default from configuration)")
	scanCmd.Flags().BoolVar(&scanNoSave, "no-save", false, "Do not remember found servers")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := s.initLogging("stderr"); err != nil {
		return err
	}
	defer logging.Sync()

	scanner := discovery.NewScanner()
	scanner.Timeout = time.Duration(s.prefs.ScanTimeout) * time.Second
	if scanTimeout > 0 {
		scanner.Timeout = scanTimeout
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("SCAN", "travelist scan", map[string]string{
		"Service": discovery.ServiceType,
		"Timeout": scanner.Timeout.String(),
	})

	endpoints, err := scanner.Scan(cmd.Context())
	if err != nil {
		p.PrintError("Scan failed", err, []string{
			"Check that multicast traffic is allowed on this network",
			"Make sure the server was started with --advertise",
		})
		return err
	}

	if len(endpoints) == 0 {
		p.PrintWarning("No stream servers found", map[string]string{
			"Timeout": scanner.Timeout.String(),
			"Hint":    "travelist serve --advertise",
		})
		return nil
	}

	rows := make([][]string, 0, len(endpoints))
	for _, ep := range endpoints {
		ver := ep.GetMetadata(discovery.TXTVersion)
		rows = append(rows, []string{ep.Instance, ep.Addr(), ep.URL(), ver})
		s.registry.UpdateServerLastSeen(ep.Instance, ep.Addr(), ver)
	}
	p.PrintTable([]string{"INSTANCE", "ADDRESS", "URL", "VERSION"}, rows)
	p.Newline()

	if scanNoSave {
		return nil
	}
	if err := s.registry.SaveTo(s.path); err != nil {
		logging.Warn("Failed to remember servers", zap.Error(err))
		p.PrintWarning("Servers not saved", map[string]string{"Error": err.Error()})
		return nil
	}
	p.PrintSuccess(fmt.Sprintf("Found %d server(s)", len(endpoints)), map[string]string{
		"Saved to": s.path,
	})
	return nil
}
