package listener

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Port != 3232 {
		t.Errorf("Port = %v, want 3232", cfg.Port)
	}
	if cfg.BufferSize != 1024 {
		t.Errorf("BufferSize = %v, want 1024", cfg.BufferSize)
	}
	if cfg.Interface != "" {
		t.Errorf("Interface = %q, want empty", cfg.Interface)
	}
	if cfg.Address() != ":3232" {
		t.Errorf("Address() = %v, want :3232", cfg.Address())
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"ephemeral port", Config{Port: 0, BufferSize: 1}, false},
		{"max values", Config{Port: 65535, BufferSize: MaxBufferSize}, false},
		{"negative port", Config{Port: -1, BufferSize: 1024}, true},
		{"port too large", Config{Port: 65536, BufferSize: 1024}, true},
		{"zero buffer", Config{Port: 3232, BufferSize: 0}, true},
		{"buffer too large", Config{Port: 3232, BufferSize: MaxBufferSize + 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}
