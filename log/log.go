// Package log is a thin leveled wrapper over log/slog used by the command
// line tools. The library packages themselves do not log.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps a slog.Logger with a mutable level.
type Logger struct {
	slog  *slog.Logger
	level Level
}

// NewText returns a Logger writing human-readable lines to w.
func NewText(w io.Writer) *Logger {
	return &Logger{
		slog: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:       slog.Level(LevelDebug),
			ReplaceAttr: replaceAttr,
		})),
		level: LevelInfo,
	}
}

// NewJson returns a Logger writing JSON lines to w.
func NewJson(w io.Writer) *Logger {
	return &Logger{
		slog: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       slog.Level(LevelDebug),
			ReplaceAttr: replaceAttr,
		})),
		level: LevelInfo,
	}
}

// SetLevel sets the logging level and returns the previous level.
func (l *Logger) SetLevel(level Level) (prev Level) {
	prev = l.level
	l.level = level
	return prev
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) log(msg string, level Level, v ...any) {
	if l.level > level {
		return
	}
	l.slog.Log(context.Background(), slog.Level(level), msg, v...)
}

// Debug level message.
func (l *Logger) Debug(msg string, v ...any) {
	l.log(msg, LevelDebug, v...)
}

// Info level message.
func (l *Logger) Info(msg string, v ...any) {
	l.log(msg, LevelInfo, v...)
}

// Warn level message.
func (l *Logger) Warn(msg string, v ...any) {
	l.log(msg, LevelWarn, v...)
}

// Error level message.
func (l *Logger) Error(msg string, v ...any) {
	l.log(msg, LevelError, v...)
}

// Fatal level message, followed by an exit.
func (l *Logger) Fatal(msg string, v ...any) {
	l.log(msg, LevelFatal, v...)
	os.Exit(1)
}

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		level := a.Value.Any().(slog.Level)
		a.Value = slog.StringValue(Level(level).String())
	}
	return a
}

var defaultLogger = NewText(os.Stderr)

// Default returns the default logger.
func Default() *Logger {
	return defaultLogger
}

// Debug logs to the default logger.
func Debug(msg string, v ...any) { defaultLogger.Debug(msg, v...) }

// Info logs to the default logger.
func Info(msg string, v ...any) { defaultLogger.Info(msg, v...) }

// Warn logs to the default logger.
func Warn(msg string, v ...any) { defaultLogger.Warn(msg, v...) }

// Error logs to the default logger.
func Error(msg string, v ...any) { defaultLogger.Error(msg, v...) }

// Fatal logs to the default logger and exits.
func Fatal(msg string, v ...any) { defaultLogger.Fatal(msg, v...) }
