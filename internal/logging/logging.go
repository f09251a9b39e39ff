// Package logging builds the logr loggers used by the grid engine and the
// gridview command.
//
// Loggers are backed by zap. When the GRID_DEBUG environment variable names a
// file, FromEnv appends development-level logs to it; otherwise it returns a
// logger that discards everything.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvDebug names the environment variable holding the debug log path.
const EnvDebug = "GRID_DEBUG"

// ParseLevel maps a level name to a zap level.
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
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", level)
	}
}

// New returns a logger writing console-encoded entries to stderr at the given level.
func New(level string) (logr.Logger, error) {
	zapLevel, err := ParseLevel(level)
	if err != nil {
		return logr.Logger{}, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = zapLevel > zapcore.DebugLevel
	z, err := cfg.Build()
	if err != nil {
		return logr.Logger{}, fmt.Errorf("failed to build logger: %w", err)
	}
	return zapr.NewLogger(z), nil
}

// NewFile returns a debug-level logger appending to path.
func NewFile(path string) (logr.Logger, error) {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return logr.Logger{}, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return logr.Logger{}, fmt.Errorf("failed to open debug log: %w", err)
	}

	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(f), zapcore.DebugLevel)
	return zapr.NewLogger(zap.New(core)), nil
}

// FromEnv returns a file logger when GRID_DEBUG is set, and a discarding
// logger otherwise or when the file cannot be opened.
func FromEnv() logr.Logger {
	path := os.Getenv(EnvDebug)
	if path == "" {
		return logr.Discard()
	}
	logger, err := NewFile(path)
	if err != nil {
		return logr.Discard()
	}
	return logger
}
