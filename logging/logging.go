// Package logging builds the process logger
// The terminal owns stdout and stderr, so logs go to a file or nowhere
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const DefaultFile = "logs/eggdrift.log"

// New returns a no-op logger unless debug is set, otherwise a JSON logger appending to file
func New(debug bool, level, file string) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	if file == "" {
		file = DefaultFile
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{file},
		ErrorOutputPaths: []string{file},
		DisableCaller:    true,
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// ParseLevel maps a level name to zap, defaulting to debug
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "info":
		return zap.InfoLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.DebugLevel
	}
}
