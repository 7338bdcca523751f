// Package ui provides the styled terminal output shared by otascout commands.
//
// It holds the colour palette, command headers and success/failure result
// boxes rendered with Lipgloss. Discovery events themselves are printed by the
// report package; ui is used around them, for example the failure box shown
// when the listener cannot bind its port or the result of a firmware size
// check.
//
// Output is plain text when colour is disabled. ColorEnabled resolves the
// --color flag (auto, always, never) against the destination terminal.
package ui
