// Package logging sets up the rotating slog file logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tbtb-research/riset/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the global slog instance for the application
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Init initializes the logging system, writing logs to the configured file
// (~/.riset/logs/riset.log by default) with size-based rotation.
// Uses text format for human readability. The returned closer flushes and
// closes the file.
func Init(cfg config.LoggingConfig) (io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	Logger = New(writer, level)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(writer)
	log.SetFlags(log.LstdFlags)

	return writer, nil
}

// New creates a text logger writing to w
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// ParseLevel maps debug, info, warn and error to slog levels
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
