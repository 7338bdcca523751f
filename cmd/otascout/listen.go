package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/otascout/internal/config"
	"github.com/muurk/otascout/internal/feed"
	"github.com/muurk/otascout/internal/listener"
	"github.com/muurk/otascout/internal/logging"
	"github.com/muurk/otascout/internal/report"
	"github.com/muurk/otascout/internal/tui"
	"github.com/muurk/otascout/internal/ui"
)

// listenFlags holds the listen flag values. Only flags set explicitly
// override the config file.
type listenFlags struct {
	port       int
	bufferSize int
	iface      string
	format     string
	color      string
	summary    bool
	feedAddr   string
}

var (
	rootListenFlags listenFlags
	listenCmdFlags  listenFlags
)

// listenCmd runs the discovery listener
var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Listen for OTA broadcasts (default command)",
	Long: `Bind the UDP discovery port on all interfaces and report every OTA
broadcast until interrupted.

Each datagram is reported with the sender's IP address and decoded payload.
Payloads that are not valid UTF-8 are shown as lowercase hex. Every datagram
is reported, including repeats from the same device.

Press Ctrl+C (or send SIGTERM) to stop.`,
	Example: `  # Listen on the default port 3232
  otascout listen

  # Live table view
  otascout listen --format tui

  # JSON lines for scripting, with a per-device summary on exit
  otascout listen --format json --summary > beacons.jsonl

  # Only accept broadcasts arriving on wlan0
  otascout listen --interface wlan0

  # Publish events to WebSocket clients at ws://localhost:8032/events
  otascout listen --feed-addr localhost:8032`,
	RunE: runListen,
}

func init() {
	addListenFlags(listenCmd, &listenCmdFlags)
	rootCmd.AddCommand(listenCmd)
}

func addListenFlags(cmd *cobra.Command, f *listenFlags) {
	cmd.Flags().IntVar(&f.port, "port", listener.DefaultPort, "UDP port to listen on")
	cmd.Flags().IntVar(&f.bufferSize, "buffer-size", listener.DefaultBufferSize, "Receive buffer size in bytes; longer datagrams are truncated")
	cmd.Flags().StringVar(&f.iface, "interface", "", "Only accept datagrams arriving on this network interface")
	cmd.Flags().StringVar(&f.format, "format", config.FormatConsole, "Output format (console, json, log, tui)")
	cmd.Flags().StringVar(&f.color, "color", config.ColorAuto, "Colour output (auto, always, never)")
	cmd.Flags().BoolVar(&f.summary, "summary", false, "Print a per-device beacon summary on exit")
	cmd.Flags().StringVar(&f.feedAddr, "feed-addr", "", "Serve events to WebSocket clients on this address")
}

// applyListenFlags copies explicitly set flags over the file values
func applyListenFlags(cmd *cobra.Command, f listenFlags, file *config.File) {
	flags := cmd.Flags()
	if flags.Changed("port") {
		file.Listener.Port = f.port
	}
	if flags.Changed("buffer-size") {
		file.Listener.BufferSize = f.bufferSize
	}
	if flags.Changed("interface") {
		file.Listener.Interface = f.iface
	}
	if flags.Changed("format") {
		file.Output.Format = f.format
	}
	if flags.Changed("color") {
		file.Output.Color = f.color
	}
	if flags.Changed("summary") {
		file.Output.Summary = f.summary
	}
	if flags.Changed("feed-addr") {
		file.Output.FeedAddr = f.feedAddr
	}
}

func runListen(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	flags := listenCmdFlags
	if !cmd.HasParent() {
		flags = rootListenFlags
	}
	applyListenFlags(cmd, flags, settings)
	if err := settings.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	format := settings.Output.Format

	if format == config.FormatLog && !logging.GetLogger().Core().Enabled(zap.InfoLevel) {
		if err := logging.Initialize("info"); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var sinks report.Multi
	var screen *tui.Sink
	var summary bytes.Buffer

	switch format {
	case config.FormatJSON:
		sinks = append(sinks, report.NewJSONLines(out))
	case config.FormatLog:
		sinks = append(sinks, report.NewLog())
	case config.FormatTUI:
		screen = tui.NewSink(cancel, tea.WithAltScreen())
		sinks = append(sinks, screen)
	default:
		sinks = append(sinks, report.NewConsole(out, ui.ColorEnabled(settings.Output.Color, os.Stdout)))
	}

	if settings.Output.Summary {
		// The summary is rendered after the TUI releases the terminal, and
		// kept off stdout when stdout carries JSON.
		var summaryOut io.Writer = out
		switch format {
		case config.FormatTUI:
			summaryOut = &summary
		case config.FormatJSON:
			summaryOut = cmd.ErrOrStderr()
		}
		sinks = append(sinks, report.NewTally(summaryOut))
	}

	if settings.Output.FeedAddr != "" {
		hub := feed.NewHub()
		if err := hub.Listen(settings.Output.FeedAddr); err != nil {
			return err
		}
		defer func() { _ = hub.Close() }()
		sinks = append(sinks, hub)
		fmt.Fprintf(cmd.ErrOrStderr(), "Event feed: ws://%s%s\n", hub.Addr(), feed.EventsPath)
	}

	l := listener.New(settings.ListenerConfig(), sinks)
	if err := l.Bind(); err != nil {
		printBindFailure(cmd.ErrOrStderr(), settings.Listener.Port, err)
		return err
	}

	if screen == nil {
		return l.Run(ctx)
	}

	result := make(chan error, 1)
	go func() {
		err := l.Run(ctx)
		if err != nil {
			screen.Quit()
		}
		result <- err
	}()

	uiErr := screen.Run()
	cancel()
	err := <-result
	if uiErr != nil && !errors.Is(uiErr, tea.ErrProgramKilled) && err == nil {
		err = fmt.Errorf("terminal UI failed: %w", uiErr)
	}
	if err == nil {
		fmt.Fprintln(out, "Stopping listener...")
		_, _ = summary.WriteTo(out)
	}
	return err
}

// printBindFailure renders the troubleshooting box for a bind error
func printBindFailure(w io.Writer, port int, err error) {
	var tips []string
	if listener.IsPermissionDenied(err) {
		tips = []string{
			"Ports below 1024 need elevated privileges on most systems",
			"Use the default port 3232, or choose another with --port",
			"On Linux: sudo setcap cap_net_bind_service=+ep $(which otascout)",
		}
	} else {
		tips = []string{
			"Another program may already be listening on UDP port " + strconv.Itoa(port),
			"On Linux/macOS: lsof -nP -iUDP:" + strconv.Itoa(port),
			"Check that --interface names an existing interface (ip link / ifconfig)",
			"Choose another port with --port",
		}
	}

	ui.PrintFailure(w, "Cannot listen on UDP port "+strconv.Itoa(port), err, tips)
}
