package firmware

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeImage(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "firmware.bin")
	if err := os.WriteFile(path, make([]byte, size), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name          string
		size          int
		limit         int64
		wantRemaining int64
		wantSizeErr   bool
	}{
		{"well under", 100, 1000, 900, false},
		{"exact fit", 1000, 1000, 0, false},
		{"one over", 1001, 1000, -1, true},
		{"empty image", 0, DefaultPartitionLimit, DefaultPartitionLimit, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeImage(t, tt.size)

			res, err := Check(path, tt.limit)
			if res.Remaining != tt.wantRemaining {
				t.Errorf("Remaining = %d, want %d", res.Remaining, tt.wantRemaining)
			}
			if res.Size != int64(tt.size) {
				t.Errorf("Size = %d, want %d", res.Size, tt.size)
			}

			var sizeErr *SizeError
			if got := errors.As(err, &sizeErr); got != tt.wantSizeErr {
				t.Fatalf("Check() error = %v, want SizeError %v", err, tt.wantSizeErr)
			}
			if tt.wantSizeErr && sizeErr.Limit != tt.limit {
				t.Errorf("SizeError.Limit = %d, want %d", sizeErr.Limit, tt.limit)
			}
			if !tt.wantSizeErr && !res.Fits() {
				t.Error("Fits() = false, want true")
			}
		})
	}
}

func TestCheck_Unreadable(t *testing.T) {
	if _, err := Check(filepath.Join(t.TempDir(), "missing.bin"), DefaultPartitionLimit); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Check() error = %v, want os.ErrNotExist", err)
	}

	if _, err := Check(t.TempDir(), DefaultPartitionLimit); err == nil {
		t.Error("Check() on directory error = nil, want error")
	}

	if _, err := Check(writeImage(t, 1), 0); err == nil {
		t.Error("Check() with zero limit error = nil, want error")
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"0x0A0000", 655360, false},
		{"655360", 655360, false},
		{" 0x100 ", 256, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"big", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLimit(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLimit(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLimit(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	if got := FormatSize(DefaultPartitionLimit); got != "655360 (0xa0000)" {
		t.Errorf("FormatSize() = %q", got)
	}
}
