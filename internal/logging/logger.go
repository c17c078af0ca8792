package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/laurence-myers/stitcher-scraper/internal/organizer"
)

// New creates a console logger writing to stderr.
//
// Verbose enables debug output. Levels are coloured only when stderr is a
// terminal.
func New(verbose bool) *zap.Logger {
	return NewWithWriter(verbose, IsTerminal(os.Stderr), zapcore.Lock(os.Stderr))
}

// NewWithWriter creates a console logger writing to ws.
func NewWithWriter(verbose, color bool, ws zapcore.WriteSyncer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	if color {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), ws, level)
	return zap.New(core)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ProgressLogger returns an organizer progress callback that logs to logger.
//
// Verbose events are logged at debug level, warnings at warn and errors at
// error. Info and success events are logged at info.
func ProgressLogger(logger *zap.Logger) func(organizer.ProgressEvent) {
	return func(e organizer.ProgressEvent) {
		switch e.Level {
		case organizer.LevelVerbose:
			logger.Debug(e.Message)
		case organizer.LevelWarning:
			logger.Warn(e.Message)
		case organizer.LevelError:
			logger.Error(e.Message)
		default:
			logger.Info(e.Message)
		}
	}
}
