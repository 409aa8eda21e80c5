package logger

import (
	"fmt"
)

// Logger is a named handle through which records are emitted. Handles are
// cheap, safe for concurrent use, and remain valid across reconfiguration:
// every call resolves the current sink snapshot, so Init and SetLogLevel take
// effect immediately for handles issued earlier.
type Logger struct {
	name  string
	bound Fields
}

// Name returns the logical name the handle was created with.
func (l *Logger) Name() string {
	return l.name
}

// With returns a derived handle that attaches the given fields to every
// record it emits. Later per-call fields still win on key collision.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{name: l.name, bound: mergeFields(l.bound, fields)}
}

func (l *Logger) log(level int64, msg string, fields Fields) {
	set := activeSinks.Load()
	if set == nil {
		return
	}
	extra := fields
	if len(l.bound) > 0 {
		extra = mergeFields(l.bound, fields)
	}
	emit(set, level, l.name, msg, extra)
}

// Debug logs a message at debug level with optional per-call extra fields.
func (l *Logger) Debug(msg string, fields ...Field) {
	l.log(LevelDebug, msg, fields)
}

// Info logs a message at info level with optional per-call extra fields.
func (l *Logger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields)
}

// Warn logs a message at warning level with optional per-call extra fields.
func (l *Logger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields)
}

// Error logs a message at error level with optional per-call extra fields.
func (l *Logger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields)
}

// Critical logs a message at critical level with optional per-call extra fields.
func (l *Logger) Critical(msg string, fields ...Field) {
	l.log(LevelCritical, msg, fields)
}

// Debugf logs a fmt.Sprintf-formatted message at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(LevelDebug, format, args...)
}

// Infof logs a fmt.Sprintf-formatted message at info level.
func (l *Logger) Infof(format string, args ...any) {
	l.logf(LevelInfo, format, args...)
}

// Warnf logs a fmt.Sprintf-formatted message at warning level.
func (l *Logger) Warnf(format string, args ...any) {
	l.logf(LevelWarn, format, args...)
}

// Errorf logs a fmt.Sprintf-formatted message at error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(LevelError, format, args...)
}

// Criticalf logs a fmt.Sprintf-formatted message at critical level.
func (l *Logger) Criticalf(format string, args ...any) {
	l.logf(LevelCritical, format, args...)
}

func (l *Logger) logf(level int64, format string, args ...any) {
	// Skip the Sprintf for records the level filter would drop anyway.
	if activeSinks.Load() == nil || level < logLevel.Load() {
		return
	}
	l.log(level, fmt.Sprintf(format, args...), nil)
}
