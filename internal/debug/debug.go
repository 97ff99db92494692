// Package debug provides opt-in diagnostic logging to stderr.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// TimeFormat is the timestamp layout used for debug lines.
const TimeFormat = "15:04:05.000"

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	out     io.Writer = os.Stderr
	logger            = newLogger(os.Stderr, false, false)
)

func newLogger(w io.Writer, enable, plain bool) zerolog.Logger {
	level := zerolog.Disabled
	if enable {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    plain,
		TimeFormat: TimeFormat,
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// rebuild must be called with mu held.
func rebuild() {
	logger = newLogger(out, enabled, noColor)
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
	rebuild()
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
	rebuild()
}

// SetOutput redirects debug output. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
	rebuild()
}

// Logger returns a structured logger tagged with the given component.
// The returned logger reflects the debug settings at the time of the call.
func Logger(component string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger.With().Str("component", component).Logger()
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Debug().Msgf(format, args...)
}

// Debugf is an alias for Debug
func Debugf(format string, args ...interface{}) {
	Debug(format, args...)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	Debug("=== %s ===", section)
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	Debug("%s = %s", key, fmt.Sprint(value))
}
