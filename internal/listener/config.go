package listener

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

const (
	// DefaultPort is the UDP port devices broadcast OTA readiness on
	DefaultPort = 3232

	// DefaultBufferSize is the receive buffer capacity in bytes
	DefaultBufferSize = 1024

	// MaxBufferSize is the largest UDP payload the listener will allocate for
	MaxBufferSize = 65535
)

// ErrInvalidConfig is wrapped by configuration validation failures
var ErrInvalidConfig = errors.New("invalid listener configuration")

// Config holds the listener configuration.
// It is copied into the Listener on New and never mutated afterwards.
type Config struct {
	// Port is the UDP port to bind. Zero selects an ephemeral port.
	Port int

	// BufferSize is the receive buffer capacity. Longer datagrams are truncated.
	BufferSize int

	// Interface restricts reception to datagrams arriving on the named
	// interface. Empty means all interfaces.
	Interface string
}

// DefaultConfig returns the configuration used by the device tooling
func DefaultConfig() Config {
	return Config{
		Port:       DefaultPort,
		BufferSize: DefaultBufferSize,
	}
}

// Validate checks the configuration ranges
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range 0-65535", ErrInvalidConfig, c.Port)
	}
	if c.BufferSize <= 0 || c.BufferSize > MaxBufferSize {
		return fmt.Errorf("%w: buffer size %d out of range 1-%d", ErrInvalidConfig, c.BufferSize, MaxBufferSize)
	}
	return nil
}

// Address returns the wildcard bind address, e.g. ":3232"
func (c Config) Address() string {
	return net.JoinHostPort("", strconv.Itoa(c.Port))
}
