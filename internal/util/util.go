//go:build !windows

// Package util carries small platform helpers for the CLI entry point.
package util

// IsRunFromGUI reports whether the tool was launched by double-click
// rather than from a shell. Always false outside Windows; on Linux and
// macOS the tool is expected to be run from a terminal.
func IsRunFromGUI() bool {
	return false
}
