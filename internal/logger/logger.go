package logger

import (
	"context"
	"log"
	"os"
	"strings"
)

// Logger is the leveled logging interface used across the application.
// The context is accepted so call sites stay stable if tracing is added later.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}

// Level is a logging severity threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config string to a Level. Unknown values default to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

type implLogger struct {
	out   *log.Logger
	level Level
}

// New creates a Logger writing to stderr at the given level.
func New(level string) Logger {
	return &implLogger{
		out:   log.New(os.Stderr, "", log.LstdFlags),
		level: ParseLevel(level),
	}
}

func (l *implLogger) logf(lv Level, tag, msg string, args ...any) {
	if lv < l.level {
		return
	}
	l.out.Printf(tag+" "+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logf(LevelDebug, "[DEBUG]", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(LevelInfo, "[INFO]", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(LevelWarn, "[WARN]", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(LevelError, "[ERROR]", msg, args...)
}
