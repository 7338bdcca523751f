// Package config manages the otascout YAML configuration file.
//
// The file holds defaults for the listener (port, buffer size, interface) and
// for output (format, colour, summary, feed address). Command-line flags that
// are set explicitly override file values. A missing file means defaults.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/otascout/config.yaml or $HOME/.config/otascout/config.yaml
//   - macOS: $HOME/.config/otascout/config.yaml
//   - Windows: %LOCALAPPDATA%\otascout\config.yaml
//
// # Example
//
//	version: 1
//	listener:
//	  port: 3232
//	  buffer_size: 1024
//	  interface: wlan0
//	output:
//	  format: console
//	  color: auto
//	  summary: true
//	log_level: info
package config
