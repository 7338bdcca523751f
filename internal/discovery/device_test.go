package discovery

import (
	"testing"
	"time"
)

func TestDevice_String(t *testing.T) {
	device := &Device{
		Instance: "esp32-a1b2c3",
		Hostname: "esp32-a1b2c3.local.",
		IP:       "192.168.4.16",
		Port:     3232,
	}

	expected := "OTA device esp32-a1b2c3 (esp32-a1b2c3.local.) at 192.168.4.16:3232"
	if device.String() != expected {
		t.Errorf("Device.String() = %v, want %v", device.String(), expected)
	}
}

func TestDevice_Address(t *testing.T) {
	tests := []struct {
		name     string
		device   *Device
		expected string
	}{
		{
			name: "standard OTA port",
			device: &Device{
				IP:   "192.168.4.16",
				Port: 3232,
			},
			expected: "192.168.4.16:3232",
		},
		{
			name: "IPv6 address",
			device: &Device{
				IP:   "fe80::1",
				Port: 3232,
			},
			expected: "[fe80::1]:3232",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.device.Address(); got != tt.expected {
				t.Errorf("Device.Address() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDevice_ShortHostname(t *testing.T) {
	tests := []struct {
		hostname string
		expected string
	}{
		{"esp32-a1b2c3.local.", "esp32-a1b2c3"},
		{"esp32-a1b2c3.local", "esp32-a1b2c3"},
		{"plainhost", "plainhost"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.hostname, func(t *testing.T) {
			d := &Device{Hostname: tt.hostname}
			if got := d.ShortHostname(); got != tt.expected {
				t.Errorf("Device.ShortHostname() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDevice_GetMetadata(t *testing.T) {
	device := &Device{
		Metadata: map[string]string{
			"board":       "esp32",
			"auth_upload": "no",
		},
	}

	if got := device.GetMetadata("board"); got != "esp32" {
		t.Errorf("Device.GetMetadata(board) = %v, want esp32", got)
	}
	if got := device.GetMetadata("missing"); got != "" {
		t.Errorf("Device.GetMetadata(missing) = %v, want empty string", got)
	}
}

func TestDevice_GetMetadata_NilMap(t *testing.T) {
	device := &Device{
		Metadata: nil,
	}

	if got := device.GetMetadata("anything"); got != "" {
		t.Errorf("Device.GetMetadata() with nil map = %v, want empty string", got)
	}
}

func TestDevice_DiscoveredAt(t *testing.T) {
	now := time.Now()
	device := &Device{
		Instance:     "esp32-a1b2c3",
		DiscoveredAt: now,
	}

	if device.DiscoveredAt != now {
		t.Errorf("Device.DiscoveredAt = %v, want %v", device.DiscoveredAt, now)
	}
}
