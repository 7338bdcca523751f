// Package tui renders discovery events as a live table in the terminal.
//
// Sink adapts a Bubble Tea program to the listener sink interface: each event
// becomes a table row in receipt order. Quitting the TUI cancels the
// listener's context, and the program exits once the listener reports it has
// stopped.
package tui
