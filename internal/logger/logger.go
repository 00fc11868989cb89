package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the log file created in the OS temp directory.
const FileName = "zsh-history-utils.log"

var (
	logFile *os.File
	level   = new(slog.LevelVar)
	log     = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Init initializes the logger to write to a temporary file. Until Init is
// called, log messages are discarded.
func Init() (string, error) {
	path := filepath.Join(os.TempDir(), FileName)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to open log file: %w", err)
	}

	logFile = f
	SetOutput(f)

	log.Debug("logger initialized", slog.Int("pid", os.Getpid()))
	return path, nil
}

// SetOutput sends log records to w.
func SetOutput(w io.Writer) {
	log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLevel sets the minimum level by name: debug, info, warn or error.
func SetLevel(name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "", "info":
		level.Set(slog.LevelInfo)
	case "warn", "warning":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	default:
		return fmt.Errorf("unknown log level %q", name)
	}
	return nil
}

// Close closes the log file.
func Close() {
	if logFile != nil {
		log.Debug("logger closing")
		logFile.Close()
		logFile = nil
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// Info logs an informational message.
func Info(format string, v ...interface{}) {
	log.Info(fmt.Sprintf(format, v...))
}

// Warn logs a warning.
func Warn(format string, v ...interface{}) {
	log.Warn(fmt.Sprintf(format, v...))
}

// Error logs an error message.
func Error(format string, v ...interface{}) {
	log.Error(fmt.Sprintf(format, v...))
}

// Debug logs a debug message.
func Debug(format string, v ...interface{}) {
	log.Debug(fmt.Sprintf(format, v...))
}
