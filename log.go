package overlay

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}
)

// Logger returns the package logger. Unless replaced with SetLogger it
// writes text records to stderr at the level set by SetLogLevel.
func Logger() *slog.Logger {
	loggerOnce.Do(func() {
		if logger != nil {
			return
		}
		levelVar.Set(slog.LevelWarn)
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelVar})
		logger = slog.New(handler).With("component", "overlay")
	})
	return logger
}

// SetLogger replaces the package logger.
func SetLogger(l *slog.Logger) {
	loggerOnce.Do(func() {})
	logger = l
}

// SetLogLevel sets the level of the default logger.
func SetLogLevel(level slog.Level) {
	Logger()
	levelVar.Set(level)
}

// SetRawLogLevel parses level names such as "debug" or "warn". Unknown
// names select info.
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

// logControlError reports a control that could not be built.
func logControlError(c LayerControl, err error) {
	b := c.Base()
	Logger().Error("control skipped", "type", b.Type, "row", b.Row, "column", b.Column, "err", err)
}
