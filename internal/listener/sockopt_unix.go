//go:build unix

package listener

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// reuseAddrControl sets SO_REUSEADDR before bind so a restarted listener does
// not trip over a socket left by a previous run
func reuseAddrControl(_, _ string, c syscall.RawConn) error {
	var opErr error
	err := c.Control(func(fd uintptr) {
		opErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}
	return opErr
}

// readTruncated reports whether recvmsg cut the datagram to the buffer size.
// The error is passed through unchanged.
func readTruncated(flags int, err error) (bool, error) {
	return flags&unix.MSG_TRUNC != 0, err
}

func isPlatformPermissionError(error) bool {
	return false
}
