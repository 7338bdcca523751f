package listener

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// Error types for listener operations

// BindReason classifies a bind failure
type BindReason int

const (
	// ReasonPermissionDenied indicates the process may not bind the port
	ReasonPermissionDenied BindReason = iota
	// ReasonOther covers every other bind failure (address in use, bad config, ...)
	ReasonOther
)

// String returns a human-readable name for the reason
func (r BindReason) String() string {
	switch r {
	case ReasonPermissionDenied:
		return "Permission Denied"
	case ReasonOther:
		return "Other"
	default:
		return fmt.Sprintf("BindReason(%d)", int(r))
	}
}

// ErrNotBound is returned by Run when the listener is not in the Bound state
var ErrNotBound = errors.New("listener is not bound")

// BindError is returned when the UDP endpoint cannot be acquired. It is fatal.
type BindError struct {
	Reason BindReason // Classification of the failure
	Addr   string     // Address that was being bound (e.g., ":3232")
	Detail string     // Specific cause for ReasonOther
	Err    error      // Underlying error (if any)
}

// Error implements the error interface
func (e *BindError) Error() string {
	if e.Reason == ReasonPermissionDenied {
		return fmt.Sprintf("permission denied binding to UDP %s", e.Addr)
	}
	return fmt.Sprintf("failed to bind UDP %s: %s", e.Addr, e.Detail)
}

// Unwrap returns the underlying error for error chain inspection
func (e *BindError) Unwrap() error {
	return e.Err
}

// ReceiveFault is returned when the socket fails after a successful bind.
// The listener does not rebind, so this ends the run.
type ReceiveFault struct {
	Addr string // Local address of the failed socket
	Err  error  // Underlying read error
}

// Error implements the error interface
func (e *ReceiveFault) Error() string {
	return fmt.Sprintf("receive failed on UDP %s: %v", e.Addr, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ReceiveFault) Unwrap() error {
	return e.Err
}

// IsPermissionDenied reports whether err is a BindError caused by missing privilege
func IsPermissionDenied(err error) bool {
	var bindErr *BindError
	return errors.As(err, &bindErr) && bindErr.Reason == ReasonPermissionDenied
}

// ClassifyBindError converts a socket error into a BindError
func ClassifyBindError(addr string, err error) *BindError {
	if err == nil {
		return nil
	}

	var bindErr *BindError
	if errors.As(err, &bindErr) {
		return bindErr
	}

	if errors.Is(err, syscall.EACCES) || errors.Is(err, syscall.EPERM) ||
		errors.Is(err, os.ErrPermission) || isPlatformPermissionError(err) {
		return &BindError{
			Reason: ReasonPermissionDenied,
			Addr:   addr,
			Err:    err,
		}
	}

	detail := err.Error()
	if errors.Is(err, syscall.EADDRINUSE) {
		detail = "address already in use by another process"
	}

	return &BindError{
		Reason: ReasonOther,
		Addr:   addr,
		Detail: detail,
		Err:    err,
	}
}
