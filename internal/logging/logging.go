package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	// LevelDebug is the debug log level
	LevelDebug LogLevel = iota
	// LevelInfo is the info log level
	LevelInfo
	// LevelWarn is the warning log level
	LevelWarn
	// LevelError is the error log level
	LevelError
)

// Format selects how log lines are rendered.
type Format string

const (
	// FormatText renders "[LEVEL] message" lines.
	FormatText Format = "text"
	// FormatJSON renders one slog JSON object per line.
	FormatJSON Format = "json"
)

var (
	currentLevel LogLevel
	levelOnce    sync.Once

	mu         sync.Mutex
	output     io.Writer = os.Stderr
	structured *slog.Logger
	sinkReady  bool
)

// initLevel initializes the log level from environment variables
func initLevel() {
	levelOnce.Do(func() {
		// Check DEBUG environment variable first
		if debug := os.Getenv("DEBUG"); debug != "" {
			switch strings.ToLower(debug) {
			case "1", "true", "yes", "on":
				currentLevel = LevelDebug
				return
			}
		}

		currentLevel = ParseLevel(os.Getenv("LOG_LEVEL"))
	})
}

// ParseLevel converts a level name to a LogLevel. Unknown or empty names
// map to LevelInfo.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// GetLevel returns the current log level
func GetLevel() LogLevel {
	initLevel()
	return currentLevel
}

// IsDebugEnabled returns true if debug logging is enabled
func IsDebugEnabled() bool {
	return GetLevel() <= LevelDebug
}

// SetOutput redirects all log output to w and re-detects the output format.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log.SetOutput(w)
	sinkReady = false
}

// DetectFormat reports the format used for w. LOG_FORMAT wins when set;
// otherwise terminals get text and everything else gets JSON.
func DetectFormat(w io.Writer) Format {
	switch Format(strings.ToLower(os.Getenv("LOG_FORMAT"))) {
	case FormatText:
		return FormatText
	case FormatJSON:
		return FormatJSON
	}

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return FormatText
	}
	return FormatJSON
}

// sink returns the slog logger for JSON output, or nil for text output.
func sink() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !sinkReady {
		structured = nil
		if DetectFormat(output) == FormatJSON {
			structured = slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))
		}
		sinkReady = true
	}
	return structured
}

func emit(level slog.Level, tag, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if l := sink(); l != nil {
		l.Log(context.Background(), level, msg)
		return
	}
	log.Printf("[%s] %s", tag, msg)
}

// Debug logs a debug message (only if DEBUG=true or LOG_LEVEL=debug)
func Debug(format string, args ...interface{}) {
	if GetLevel() <= LevelDebug {
		emit(slog.LevelDebug, "DEBUG", format, args...)
	}
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if GetLevel() <= LevelInfo {
		emit(slog.LevelInfo, "INFO", format, args...)
	}
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	if GetLevel() <= LevelWarn {
		emit(slog.LevelWarn, "WARN", format, args...)
	}
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	if GetLevel() <= LevelError {
		emit(slog.LevelError, "ERROR", format, args...)
	}
}

// String returns the string representation of a log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("unknown(%d)", l)
	}
}
