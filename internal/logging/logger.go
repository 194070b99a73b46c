package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps a level name onto a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// New returns a logger writing JSON lines to path, or a console logger on stderr when
// path is empty. The returned closer flushes the underlying zap logger.
func New(level, path string) (logr.Logger, func() error, error) {
	zapLevel, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.Sampling = nil
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if path == "" {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.OutputPaths = []string{"stderr"}
	} else {
		cfg.OutputPaths = []string{path}
	}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if zapLevel == zapcore.DebugLevel {
		cfg.Development = true
	}

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf("build logger: %w", err)
	}
	return zapr.NewLogger(zl), zl.Sync, nil
}

// NewWriter returns a JSON logger over w, mostly for tests and buffered output.
func NewWriter(level string, w io.Writer) (logr.Logger, error) {
	zapLevel, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(w), zapLevel)
	return zapr.NewLogger(zap.New(core)), nil
}

// ForTUI returns a discard logger unless a log file is configured: the terminal
// belongs to the UI.
func ForTUI(level, path string) (logr.Logger, func() error, error) {
	if strings.TrimSpace(path) == "" {
		if _, err := ParseLevel(level); err != nil {
			return logr.Discard(), nil, err
		}
		return logr.Discard(), func() error { return nil }, nil
	}
	return New(level, path)
}
