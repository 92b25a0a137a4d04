// Package logging builds the zap loggers used by the command-line tool.
package logging

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidFormat is returned for an unknown Config.Format.
var ErrInvalidFormat = errors.New("logging: format must be 'json' or 'console'")

// Config holds logger configuration options.
type Config struct {
	// Format specifies the log output format: "json" or "console"
	Format string
	// Level specifies the minimum log level: "debug", "info", "warn", "error"
	Level string
	// Output specifies where logs are written (defaults to os.Stderr so that
	// stdout carries only the solver report)
	Output zapcore.WriteSyncer
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Format: "console",
		Level:  "warn",
		Output: os.Stderr,
	}
}

// NewLogger creates a zap logger from cfg.
func NewLogger(cfg Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	var encoder zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "json":
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case "console", "text", "":
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidFormat, cfg.Format)
	}

	core := zapcore.NewCore(encoder, output, level)

	return zap.New(core, zap.AddCaller()), nil
}

// Discard returns a logger that drops everything (useful for tests).
func Discard() *zap.Logger {
	return zap.NewNop()
}

// ParseLevel converts a level name to a zapcore.Level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("logging: invalid log level: %s", level)
	}
}
