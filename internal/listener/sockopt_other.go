//go:build !unix && !windows

package listener

import "syscall"

func reuseAddrControl(_, _ string, _ syscall.RawConn) error {
	return nil
}

func readTruncated(_ int, err error) (bool, error) {
	return false, err
}

func isPlatformPermissionError(error) bool {
	return false
}
