package discovery

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Device represents an OTA endpoint advertised over mDNS
type Device struct {
	// Instance is the mDNS service instance name (e.g., "esp32-a1b2c3")
	Instance string

	// Hostname is the mDNS hostname (e.g., "esp32-a1b2c3.local.")
	Hostname string

	// IP is the device address, IPv4 preferred
	IP string

	// Port is the OTA port (typically 3232)
	Port int

	// Board is the board identifier from the TXT record, if advertised
	Board string

	// AuthRequired is true when the device advertises password-protected uploads
	AuthRequired bool

	// Metadata contains all mDNS TXT record data
	// Common fields: "board=esp32", "tcp_check=no", "ssh_upload=no", "auth_upload=no"
	Metadata map[string]string

	// DiscoveredAt is when the device was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the device
func (d *Device) String() string {
	return fmt.Sprintf("OTA device %s (%s) at %s", d.Instance, d.Hostname, d.Address())
}

// Address returns the TCP address for an OTA connection
func (d *Device) Address() string {
	return net.JoinHostPort(d.IP, strconv.Itoa(d.Port))
}

// ShortHostname returns the hostname without the mDNS domain
func (d *Device) ShortHostname() string {
	return strings.TrimSuffix(strings.TrimSuffix(d.Hostname, "."), ".local")
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (d *Device) GetMetadata(key string) string {
	if d.Metadata == nil {
		return ""
	}
	return d.Metadata[key]
}
