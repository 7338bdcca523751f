package config

import (
	"fmt"

	"github.com/muurk/otascout/internal/listener"
	"github.com/muurk/otascout/internal/ui"
)

// CurrentVersion is the configuration file schema version
const CurrentVersion = 1

// Output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatLog     = "log"
	FormatTUI     = "tui"
)

// Colour modes
const (
	ColorAuto   = ui.ColorAuto
	ColorAlways = ui.ColorAlways
	ColorNever  = ui.ColorNever
)

// File represents the entire user configuration file.
type File struct {
	Version  int            `yaml:"version"`
	Listener *ListenerPrefs `yaml:"listener,omitempty"`
	Output   *OutputPrefs   `yaml:"output,omitempty"`
	LogLevel string         `yaml:"log_level,omitempty"` // debug, info, warn, error; empty = silent
}

// ListenerPrefs mirrors listener.Config.
type ListenerPrefs struct {
	Port       int    `yaml:"port"`                // UDP port to bind
	BufferSize int    `yaml:"buffer_size"`         // Receive buffer capacity in bytes
	Interface  string `yaml:"interface,omitempty"` // Restrict to one interface; empty = all
}

// OutputPrefs controls how events are reported.
type OutputPrefs struct {
	Format   string `yaml:"format"`              // console, json, log or tui
	Color    string `yaml:"color"`               // auto, always or never
	Summary  bool   `yaml:"summary"`             // Print per-device beacon counts on shutdown
	FeedAddr string `yaml:"feed_addr,omitempty"` // WebSocket feed address; empty = disabled
}

// NewFile creates a File with default values.
func NewFile() *File {
	defaults := listener.DefaultConfig()
	return &File{
		Version: CurrentVersion,
		Listener: &ListenerPrefs{
			Port:       defaults.Port,
			BufferSize: defaults.BufferSize,
		},
		Output: &OutputPrefs{
			Format: FormatConsole,
			Color:  ColorAuto,
		},
	}
}

// fillDefaults initializes sections missing from a parsed file.
func (f *File) fillDefaults() {
	defaults := NewFile()
	if f.Listener == nil {
		f.Listener = defaults.Listener
	}
	if f.Listener.Port == 0 {
		f.Listener.Port = defaults.Listener.Port
	}
	if f.Listener.BufferSize == 0 {
		f.Listener.BufferSize = defaults.Listener.BufferSize
	}
	if f.Output == nil {
		f.Output = defaults.Output
	}
	if f.Output.Format == "" {
		f.Output.Format = defaults.Output.Format
	}
	if f.Output.Color == "" {
		f.Output.Color = defaults.Output.Color
	}
}

// Validate checks enumerated values and listener ranges.
func (f *File) Validate() error {
	if f.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", f.Version, CurrentVersion)
	}
	if err := f.ListenerConfig().Validate(); err != nil {
		return err
	}
	switch f.Output.Format {
	case FormatConsole, FormatJSON, FormatLog, FormatTUI:
	default:
		return fmt.Errorf("unknown output format %q (expected console, json, log or tui)", f.Output.Format)
	}
	switch f.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (expected auto, always or never)", f.Output.Color)
	}
	return nil
}

// ListenerConfig returns the listener configuration described by the file.
func (f *File) ListenerConfig() listener.Config {
	return listener.Config{
		Port:       f.Listener.Port,
		BufferSize: f.Listener.BufferSize,
		Interface:  f.Listener.Interface,
	}
}
