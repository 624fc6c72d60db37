// ABOUTME: Leveled logging for ttyctl diagnostics, using slog level constants
// ABOUTME: Global level via SetLevel; output goes to stderr unless redirected with SetOutput

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level atomic.Int64

	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects log lines to w and returns the previous writer.
// A nil w restores stderr.
func SetOutput(w io.Writer) io.Writer {
	outMu.Lock()
	defer outMu.Unlock()

	prev := out
	if w == nil {
		w = os.Stderr
	}
	out = w
	return prev
}

// Enabled reports whether messages at l would be written.
func Enabled(l slog.Level) bool {
	return l >= slog.Level(level.Load())
}

func emit(tag, format string, args ...any) {
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(out, "["+tag+"] "+format+"\n", args...)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	if !Enabled(LevelDebug) {
		return
	}
	emit("DEBUG", format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	if !Enabled(LevelInfo) {
		return
	}
	emit("INFO", format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	if !Enabled(LevelWarn) {
		return
	}
	emit("WARN", format, args...)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	emit("ERROR", format, args...)
}
