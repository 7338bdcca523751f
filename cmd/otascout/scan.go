package main

import (
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/muurk/otascout/internal/discovery"
)

var scanTimeout time.Duration

// scanCmd browses mDNS for OTA endpoints
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for OTA endpoints advertised over mDNS",
	Long: `Browse mDNS for _arduino._tcp services, the OTA endpoint advertised by
ESP32 firmware with network updates enabled.

This complements 'otascout listen': devices that announce over mDNS are found
without waiting for a UDP broadcast.`,
	Example: `  # Scan for 5 seconds (default)
  otascout scan

  # Longer scan for busy networks
  otascout scan --timeout 15s`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", discovery.DefaultScanTimeout, "How long to browse for devices")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Scanning for %s services (timeout: %s)...\n\n", discovery.ServiceType, scanTimeout)

	scanner := discovery.NewScanner()
	scanner.Timeout = scanTimeout

	devices, err := scanner.ScanForDevicesWithContext(cmd.Context())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(devices) == 0 {
		fmt.Fprintln(out, "No devices found.")
		fmt.Fprintln(out, "\nTroubleshooting:")
		fmt.Fprintln(out, "  - Ensure the device is powered on and joined to this network")
		fmt.Fprintln(out, "  - mDNS does not cross subnets or some guest Wi-Fi networks")
		fmt.Fprintln(out, "  - Try increasing --timeout")
		fmt.Fprintln(out, "  - Use 'otascout listen' to catch UDP OTA broadcasts instead")
		return nil
	}

	fmt.Fprintf(out, "Found %d device(s):\n\n", len(devices))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Instance", "Hostname", "Address", "Board", "Auth"})
	table.SetAutoFormatHeaders(false)
	for _, d := range devices {
		auth := "no"
		if d.AuthRequired {
			auth = "yes"
		}
		board := d.Board
		if board == "" {
			board = "-"
		}
		table.Append([]string{d.Instance, d.ShortHostname(), d.Address(), board, auth})
	}
	table.Render()

	return nil
}
