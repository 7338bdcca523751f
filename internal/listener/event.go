package listener

import (
	"encoding/hex"
	"fmt"
	"net"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"
)

// beaconPattern matches the announcement sent by devices in OTA mode,
// "MeshtasticOTA_" followed by the last three bytes of the station MAC
var beaconPattern = regexp.MustCompile(`^MeshtasticOTA_([0-9a-f]{6})$`)

// Event is one received datagram. Events are created per datagram and never
// modified; sinks must treat Payload as read-only.
type Event struct {
	// SourceIP is the sender address in text form (e.g., "192.168.4.16")
	SourceIP string `json:"source_ip"`

	// SourcePort is the sender UDP port
	SourcePort int `json:"source_port"`

	// Payload is the retained datagram body
	Payload []byte `json:"payload"`

	// Message is the decoded payload: the text itself, or lowercase hex
	Message string `json:"message"`

	// Binary is true when Message holds the hex fallback
	Binary bool `json:"binary"`

	// Truncated is true when the platform reported the datagram exceeded the buffer
	Truncated bool `json:"truncated,omitempty"`

	// DeviceID is the MAC suffix from a device beacon, empty for other payloads
	DeviceID string `json:"device_id,omitempty"`

	// ListenPort is the local port the datagram arrived on; the OTA TCP port
	ListenPort int `json:"listen_port"`

	// ReceivedAt is when the datagram was read from the socket
	ReceivedAt time.Time `json:"received_at"`
}

// NewEvent builds an event from a datagram read off a socket bound to listenPort
func NewEvent(src *net.UDPAddr, payload []byte, truncated bool, listenPort int, at time.Time) Event {
	msg, binary := Decode(payload)
	ev := Event{
		Payload:    payload,
		Message:    msg,
		Binary:     binary,
		Truncated:  truncated,
		ListenPort: listenPort,
		ReceivedAt: at,
	}
	if src != nil {
		ev.SourceIP = src.IP.String()
		ev.SourcePort = src.Port
	}
	if !binary {
		ev.DeviceID = ParseDeviceID(msg)
	}
	return ev
}

// Hint returns the TCP address for a follow-up OTA connection (e.g., "192.168.4.16:3232")
func (e Event) Hint() string {
	return net.JoinHostPort(e.SourceIP, strconv.Itoa(e.ListenPort))
}

// Source returns the sender address (e.g., "192.168.4.16:55000")
func (e Event) Source() string {
	return net.JoinHostPort(e.SourceIP, strconv.Itoa(e.SourcePort))
}

// String returns a one-line description of the event
func (e Event) String() string {
	return fmt.Sprintf("%s: %q", e.Source(), e.Message)
}

// Decode converts a payload to text. Valid UTF-8 is returned unchanged;
// anything else is returned as lowercase hex with binary set to true.
func Decode(payload []byte) (msg string, binary bool) {
	if utf8.Valid(payload) {
		return string(payload), false
	}
	return hex.EncodeToString(payload), true
}

// ParseDeviceID extracts the MAC suffix from a device beacon message.
// Returns an empty string if msg is not a beacon.
func ParseDeviceID(msg string) string {
	matches := beaconPattern.FindStringSubmatch(msg)
	if len(matches) < 2 {
		return ""
	}
	return matches[1]
}
