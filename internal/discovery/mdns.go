package discovery

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// ServiceType is the mDNS service type advertised by Arduino-style OTA endpoints
	ServiceType = "_arduino._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for device discovery
	DefaultScanTimeout = 5 * time.Second

	// DefaultPort is the OTA port used when an entry advertises none
	DefaultPort = 3232
)

// Scanner handles mDNS device discovery
type Scanner struct {
	// Timeout is the maximum time to wait for device discovery
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// ScanForDevices browses for OTA endpoints until the timeout elapses
func (s *Scanner) ScanForDevices() ([]*Device, error) {
	return s.ScanForDevicesWithContext(context.Background())
}

// ScanForDevicesWithContext discovers devices with a custom context.
// Devices are returned sorted by address, one entry per instance.
func (s *Scanner) ScanForDevicesWithContext(ctx context.Context) ([]*Device, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	found := make(map[string]*Device)
	collected := make(chan struct{})

	go func() {
		defer close(collected)
		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				if device := parseServiceEntry(entry); device != nil {
					found[device.Instance] = device
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		cancel()
		<-collected
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()
	<-collected

	devices := make([]*Device, 0, len(found))
	for _, d := range found {
		devices = append(devices, d)
	}
	sort.Slice(devices, func(i, j int) bool {
		return devices[i].Address() < devices[j].Address()
	})
	return devices, nil
}

// parseServiceEntry converts a zeroconf service entry to a Device.
// Returns nil if the entry has no usable address.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Device {
	if entry == nil {
		return nil
	}

	var ip string
	for _, addr := range entry.AddrIPv4 {
		ip = addr.String()
		break
	}
	if ip == "" && len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	port := entry.Port
	if port == 0 {
		port = DefaultPort
	}

	// TXT records are in "key=value" format
	metadata := make(map[string]string)
	for _, txt := range entry.Text {
		parts := strings.SplitN(txt, "=", 2)
		if len(parts) == 2 {
			metadata[parts[0]] = parts[1]
		} else {
			metadata[parts[0]] = ""
		}
	}

	instance := entry.Instance
	if instance == "" {
		instance = strings.TrimSuffix(strings.TrimSuffix(entry.HostName, "."), ".local")
	}

	return &Device{
		Instance:     instance,
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         port,
		Board:        metadata["board"],
		AuthRequired: metadata["auth_upload"] == "yes",
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}

// ScanForDevices is a convenience function to scan for devices with a custom timeout
func ScanForDevices(timeout time.Duration) ([]*Device, error) {
	scanner := NewScanner()
	scanner.Timeout = timeout
	return scanner.ScanForDevices()
}
