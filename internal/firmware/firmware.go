// Package firmware checks firmware images against the OTA partition size.
//
// The device keeps the running image in one application partition and streams
// the update into the other, so an image larger than a single partition can
// never be applied over the air.
package firmware

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultPartitionLimit is the OTA application partition size (0x0A0000)
const DefaultPartitionLimit int64 = 0x0A0000

// Result describes a firmware image checked against a partition limit
type Result struct {
	Path      string
	Size      int64
	Limit     int64
	Remaining int64 // Negative when the image does not fit
}

// Fits reports whether the image fits within the limit
func (r Result) Fits() bool {
	return r.Remaining >= 0
}

// SizeError is returned when an image exceeds the partition limit
type SizeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("firmware %s is %d bytes, exceeding the %d byte partition limit by %d bytes",
		e.Path, e.Size, e.Limit, e.Size-e.Limit)
}

// Check stats the image at path and compares it with limit.
// The Result is populated even when a SizeError is returned.
func Check(path string, limit int64) (Result, error) {
	if limit <= 0 {
		return Result{}, fmt.Errorf("partition limit must be positive, got %d", limit)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("cannot read firmware image: %w", err)
	}
	if info.IsDir() {
		return Result{}, fmt.Errorf("firmware image %s is a directory", path)
	}

	res := Result{
		Path:      path,
		Size:      info.Size(),
		Limit:     limit,
		Remaining: limit - info.Size(),
	}
	if !res.Fits() {
		return res, &SizeError{Path: path, Size: res.Size, Limit: limit}
	}
	return res, nil
}

// ParseLimit parses a partition size in decimal, hex (0x) or octal (0o) notation
func ParseLimit(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid partition limit %q: %w", s, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("partition limit must be positive, got %d", v)
	}
	return v, nil
}

// FormatSize renders a byte count as decimal and hex, e.g. "655360 (0xa0000)"
func FormatSize(n int64) string {
	return fmt.Sprintf("%d (0x%x)", n, n)
}
