package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog with the rotating-file setup the run log uses.
// An empty logPath logs to stderr only (tests, dry runs).
type Logger struct {
	s    *slog.Logger
	file *lumberjack.Logger
}

func NewLogger(logPath, logLevel string) *Logger {
	level := parseLevel(logLevel)

	var w io.Writer = os.Stderr
	var file *lumberjack.Logger
	if logPath != "" {
		file = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
		}
		w = io.MultiWriter(os.Stderr, file)
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		s:    slog.New(handler),
		file: file,
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Debug(msg string, fields ...any) {
	l.s.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...any) {
	l.s.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...any) {
	l.s.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...any) {
	l.s.Error(msg, fields...)
}

func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
