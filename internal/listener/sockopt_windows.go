//go:build windows

package listener

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

const (
	wsaeacces   = syscall.Errno(10013)
	wsaemsgsize = syscall.Errno(10040)
)

// reuseAddrControl sets SO_REUSEADDR before bind so a restarted listener does
// not trip over a socket left by a previous run
func reuseAddrControl(_, _ string, c syscall.RawConn) error {
	var opErr error
	err := c.Control(func(fd uintptr) {
		opErr = windows.SetsockoptInt(windows.Handle(fd), windows.SOL_SOCKET, windows.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}
	return opErr
}

// readTruncated maps WSAEMSGSIZE, which winsock returns for an oversized
// datagram after filling the buffer, to a truncated read without error
func readTruncated(_ int, err error) (bool, error) {
	if errors.Is(err, wsaemsgsize) {
		return true, nil
	}
	return false, err
}

func isPlatformPermissionError(err error) bool {
	return errors.Is(err, wsaeacces)
}
