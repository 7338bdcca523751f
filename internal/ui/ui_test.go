package ui

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestResultRender(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "success with details",
			result: NewSuccessResult("Firmware fits partition").AddDetail("Size", "1024 bytes").AddDetail("Free", "10 bytes"),
			want:   []string{"SUCCESS", "Firmware fits partition", "Size:", "1024 bytes", "Free:"},
		},
		{
			name:   "failure with troubleshooting",
			result: NewFailureResult("Cannot bind", errors.New("permission denied"), []string{"Run as root"}),
			want:   []string{"FAILED", "Cannot bind", "Error: permission denied", "Troubleshooting:", "Run as root"},
		},
		{
			name:   "warning",
			result: NewWarningResult("No devices"),
			want:   []string{"WARNING", "No devices"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.result.SetWidth(80).Render()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("Render() missing %q in:\n%s", w, out)
				}
			}
		})
	}
}

func TestResultDetailOrder(t *testing.T) {
	out := NewSuccessResult("ok").AddDetail("First", "1").AddDetail("Second", "2").SetWidth(80).Render()
	if strings.Index(out, "First") > strings.Index(out, "Second") {
		t.Errorf("details rendered out of order:\n%s", out)
	}
}

func TestHeaderRender(t *testing.T) {
	out := NewHeader("ota listener", "otascout listen").
		AddParam("Port", "3232").
		AddParam("Interface", "all").
		SetWidth(20).
		Render()

	for _, w := range []string{"OTA LISTENER", "otascout listen", "Port:", "3232", "Interface:"} {
		if !strings.Contains(out, w) {
			t.Errorf("Render() missing %q in:\n%s", w, out)
		}
	}
}

func TestColorEnabled(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	tests := []struct {
		mode string
		want bool
	}{
		{ColorAlways, true},
		{ColorNever, false},
		{ColorAuto, false}, // a regular file is not a terminal
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			if got := ColorEnabled(tt.mode, f); got != tt.want {
				t.Errorf("ColorEnabled(%q) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestGetTerminalWidth(t *testing.T) {
	w := GetTerminalWidth()
	if w < MinTerminalWidth || w > MaxContentWidth {
		t.Errorf("GetTerminalWidth() = %d, want between %d and %d", w, MinTerminalWidth, MaxContentWidth)
	}
}
