// Package cli holds the argument rules and exit codes shared by the
// command-line tools.
//
// Argument problems are returned as *InvalidArgumentError and map to
// ExitInvalidArgs. Any other error maps to ExitUnhandledError.
package cli
