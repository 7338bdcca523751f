// Package report provides listener sinks that format discovery events for
// operators and downstream tools.
//
// Sinks:
//   - Console: the human-readable "Device Found!" block per event
//   - JSONLines: one JSON object per event for scripting
//   - Log: one structured zap entry per event
//   - Tally: per-device beacon counts, rendered as a table on shutdown
//   - Multi: fan-out to several sinks in order
//
// All sinks are driven from the listener's receive goroutine and write
// synchronously, so output order matches receipt order.
package report
