// Package logging builds the zap loggers used by the command-line tools
// and bridges organizer progress events into them.
package logging
