// Package logging builds the process logger from the CLI's verbosity
// setting.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels are the accepted level names, most to least severe.
var Levels = []string{"CRITICAL", "ERROR", "WARNING", "INFO", "DEBUG"}

// DefaultLevel is used when neither flag nor config file set one.
const DefaultLevel = "INFO"

// ParseLevel maps a level name onto the zap threshold the logger runs at.
// Names are case-insensitive. CRITICAL maps to the fatal threshold so that
// plain error output is suppressed as well.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "CRITICAL":
		return zapcore.FatalLevel, nil
	case "ERROR":
		return zapcore.ErrorLevel, nil
	case "WARNING":
		return zapcore.WarnLevel, nil
	case "INFO":
		return zapcore.InfoLevel, nil
	case "DEBUG":
		return zapcore.DebugLevel, nil
	default:
		return zapcore.InvalidLevel, fmt.Errorf("invalid log level %q (choose from %s)", name, strings.Join(Levels, ", "))
	}
}

// New builds a console logger on stderr filtered to the named level.
func New(name string) (*zap.Logger, error) {
	level, err := ParseLevel(name)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	return cfg.Build()
}
