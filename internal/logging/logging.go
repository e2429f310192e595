// Package logging builds the service's zap logger.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ParseLevel maps a case-insensitive level name to a zap level.
// Empty or unknown names fall back to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseFormat returns FormatConsole for "console" or "text", FormatJSON otherwise.
func ParseFormat(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "console", "text":
		return FormatConsole
	default:
		return FormatJSON
	}
}

// New builds a logger writing to stderr.
func New(level, format string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if ParseFormat(format) == FormatConsole {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	return cfg.Build()
}
