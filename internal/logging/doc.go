// Package logging provides structured logging for otascout.
//
// This package wraps a global zap logger with convenience functions. Logging is
// silent unless a level is requested, so the console report of the listener
// stays clean; log lines go to stderr.
//
// # Configuration
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// An empty level falls back to the OTASCOUT_LOG_LEVEL environment variable.
//
// # Datagram Logging
//
// LogDatagram emits a hex and ascii dump of each payload at debug level:
//
//	logging.LogDatagram("192.168.4.16:55000", payload, false)
package logging
