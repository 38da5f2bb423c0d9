package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile     *os.File
	logFilename string

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar
)

// SetLogFilename opts into file logging under logs/ in addition to stdout.
// Must be called before the first GetLogger; without it the logger writes
// to stdout only.
func SetLogFilename(filename string) {
	logFilename = filename
}

// GetLogger returns the shared JSON logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		levelVar.Set(slog.LevelWarn)

		var w io.Writer = os.Stdout
		if logFilename != "" {
			if err := os.MkdirAll("logs", 0755); err == nil {
				f, err := os.OpenFile(filepath.Join("logs", logFilename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
				if err == nil {
					logFile = f
					w = io.MultiWriter(os.Stdout, f)
				}
			}
		}

		logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		}))
	})
	return logger
}

// SetLogLevel adjusts the shared logger's level.
func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

// SetRawLogLevel adjusts the level from a string, defaulting to info.
func SetRawLogLevel(rawLevel string) {
	var level slog.Level
	switch strings.ToLower(rawLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	SetLogLevel(level)
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
