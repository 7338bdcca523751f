package listener

import (
	"encoding/hex"
	"net"
	"testing"
	"testing/quick"
	"time"
	"unicode/utf8"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		payload    []byte
		wantMsg    string
		wantBinary bool
	}{
		{
			name:    "ascii text",
			payload: []byte("hello"),
			wantMsg: "hello",
		},
		{
			name:    "device beacon",
			payload: []byte("MeshtasticOTA_a1b2c3"),
			wantMsg: "MeshtasticOTA_a1b2c3",
		},
		{
			name:    "multibyte utf-8",
			payload: []byte("Gerät öffnen ✓"),
			wantMsg: "Gerät öffnen ✓",
		},
		{
			name:    "empty payload",
			payload: []byte{},
			wantMsg: "",
		},
		{
			name:    "embedded NUL is still text",
			payload: []byte("a\x00b"),
			wantMsg: "a\x00b",
		},
		{
			name:       "deadbeef",
			payload:    []byte{0xDE, 0xAD, 0xBE, 0xEF},
			wantMsg:    "deadbeef",
			wantBinary: true,
		},
		{
			name:       "truncated multibyte sequence",
			payload:    []byte{'o', 'k', 0xE2, 0x9C},
			wantMsg:    "6f6be29c",
			wantBinary: true,
		},
		{
			name:       "utf-16 surrogate encoded as utf-8",
			payload:    []byte{0xED, 0xA0, 0x80},
			wantMsg:    "eda080",
			wantBinary: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, binary := Decode(tt.payload)
			if msg != tt.wantMsg {
				t.Errorf("Decode() msg = %q, want %q", msg, tt.wantMsg)
			}
			if binary != tt.wantBinary {
				t.Errorf("Decode() binary = %v, want %v", binary, tt.wantBinary)
			}
		})
	}
}

func TestDecode_Lossless(t *testing.T) {
	property := func(payload []byte) bool {
		msg, binary := Decode(payload)
		if utf8.Valid(payload) {
			return !binary && msg == string(payload)
		}
		decoded, err := hex.DecodeString(msg)
		return binary && err == nil && string(decoded) == string(payload)
	}

	if err := quick.Check(property, &quick.Config{MaxCount: 2000}); err != nil {
		t.Error(err)
	}
}

func TestParseDeviceID(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"MeshtasticOTA_a1b2c3", "a1b2c3"},
		{"MeshtasticOTA_000000", "000000"},
		{"MeshtasticOTA_A1B2C3", ""}, // firmware prints lowercase hex
		{"MeshtasticOTA_a1b2", ""},
		{"MeshtasticOTA_a1b2c3d4", ""},
		{"meshtasticOTA_a1b2c3", ""},
		{"hello", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			if got := ParseDeviceID(tt.msg); got != tt.want {
				t.Errorf("ParseDeviceID(%q) = %q, want %q", tt.msg, got, tt.want)
			}
		})
	}
}

func TestNewEvent(t *testing.T) {
	at := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	src := &net.UDPAddr{IP: net.ParseIP("192.0.2.10"), Port: 55000}

	ev := NewEvent(src, []byte("hello"), false, DefaultPort, at)

	if ev.SourceIP != "192.0.2.10" {
		t.Errorf("SourceIP = %v, want 192.0.2.10", ev.SourceIP)
	}
	if ev.SourcePort != 55000 {
		t.Errorf("SourcePort = %v, want 55000", ev.SourcePort)
	}
	if ev.Message != "hello" {
		t.Errorf("Message = %q, want hello", ev.Message)
	}
	if ev.Binary {
		t.Error("Binary = true, want false")
	}
	if ev.DeviceID != "" {
		t.Errorf("DeviceID = %q, want empty", ev.DeviceID)
	}
	if got := ev.Hint(); got != "192.0.2.10:3232" {
		t.Errorf("Hint() = %v, want 192.0.2.10:3232", got)
	}
	if got := ev.Source(); got != "192.0.2.10:55000" {
		t.Errorf("Source() = %v, want 192.0.2.10:55000", got)
	}
	if !ev.ReceivedAt.Equal(at) {
		t.Errorf("ReceivedAt = %v, want %v", ev.ReceivedAt, at)
	}
}

func TestNewEvent_Beacon(t *testing.T) {
	src := &net.UDPAddr{IP: net.ParseIP("192.168.4.16"), Port: 49152}

	ev := NewEvent(src, []byte("MeshtasticOTA_a1b2c3"), false, DefaultPort, time.Now())

	if ev.DeviceID != "a1b2c3" {
		t.Errorf("DeviceID = %q, want a1b2c3", ev.DeviceID)
	}
}

func TestNewEvent_IPv6Hint(t *testing.T) {
	src := &net.UDPAddr{IP: net.ParseIP("fe80::1"), Port: 1234}

	ev := NewEvent(src, []byte{0xff}, false, DefaultPort, time.Now())

	if got := ev.Hint(); got != "[fe80::1]:3232" {
		t.Errorf("Hint() = %v, want [fe80::1]:3232", got)
	}
	if !ev.Binary || ev.Message != "ff" {
		t.Errorf("Message = %q (binary %v), want ff (binary true)", ev.Message, ev.Binary)
	}
}
