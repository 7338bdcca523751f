// Otascout listens for over-the-air update beacons from Meshtastic devices.
//
// Devices ready for an OTA update broadcast a short UDP datagram
// (MeshtasticOTA_xxyyzz) once per second on port 3232. otascout reports each
// datagram with the sender's address so an update tool can connect to the
// device over TCP on the same port.
//
// Usage:
//
//	otascout [command] [flags]
//
// Running without arguments starts the listener.
// See 'otascout --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/otascout/internal/config"
	"github.com/muurk/otascout/internal/logging"
	"github.com/muurk/otascout/internal/version"
)

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// skipConfigAnnotation marks commands that must work without a readable config file
const skipConfigAnnotation = "otascout/skip-config"

// Global flags
var (
	configPath string
	logLevel   string
)

// settings is the loaded configuration file, populated before any command runs
var settings *config.File

var rootCmd = &cobra.Command{
	Use:   "otascout",
	Short: "Meshtastic OTA Discovery Listener",
	Long: `Listens for UDP broadcasts from Meshtastic devices that are ready for an
over-the-air firmware update and reports where to connect.

Devices announce themselves once per second with a MeshtasticOTA_xxyyzz
datagram on UDP port 3232. Each datagram is reported with the sender's IP
address and the TCP endpoint to use for the update.

If no command is specified, the listener starts automatically.`,
	Version:           version.Version,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Default behavior: listen when no subcommand provided
	rootCmd.RunE = runListen

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the platform config directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)

	addListenFlags(rootCmd, &rootListenFlags)

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "otascout "+version.Full())
	},
}

// resolveConfigPath returns --config or the platform default
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

// loadSettings reads the config file and initializes logging.
// Log level precedence: --log-level, then OTASCOUT_LOG_LEVEL, then the file.
func loadSettings(cmd *cobra.Command, args []string) error {
	settings = config.NewFile()
	if cmd.Annotations[skipConfigAnnotation] == "" {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if settings, err = config.Load(path); err != nil {
			return err
		}
	}

	switch {
	case cmd.Flags().Changed("log-level"):
		return logging.Initialize(logLevel)
	case os.Getenv(logging.LogLevelEnvVar) != "":
		return logging.InitializeFromEnv()
	default:
		return logging.Initialize(settings.LogLevel)
	}
}
