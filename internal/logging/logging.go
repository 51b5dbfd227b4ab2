// Package logging writes structured debug events as JSON lines to a file.
// When logging is not enabled every call is a no-op.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// DefaultPath is the log file used by --debug.
const DefaultPath = "tafel-debug.log"

// Logger writes one JSON object per event.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	closer  io.Closer
	enabled bool
	seq     int
	now     func() time.Time
}

// New returns a logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{w: w, enabled: w != nil, now: time.Now}
}

var (
	stdMu sync.RWMutex
	std   = &Logger{}
)

// Init enables file logging at path. With enabled false the package logger
// stays a no-op.
func Init(enabled bool, path string) error {
	if !enabled {
		setDefault(&Logger{})
		return nil
	}
	if path == "" {
		path = DefaultPath
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	l := New(f)
	l.closer = f
	setDefault(l)

	l.Event("DEBUG_START", map[string]any{
		"log_file": path,
		"time":     time.Now().Format(time.RFC3339),
	})
	return nil
}

// SetDefault replaces the package logger. Tests use it to capture events.
func SetDefault(l *Logger) {
	setDefault(l)
}

func setDefault(l *Logger) {
	stdMu.Lock()
	defer stdMu.Unlock()
	std = l
}

// Default returns the package logger.
func Default() *Logger {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

// Close flushes the closing event and closes the log file.
func Close() {
	l := Default()
	if l == nil || l.closer == nil {
		return
	}
	l.Event("DEBUG_END", map[string]any{
		"time": time.Now().Format(time.RFC3339),
	})
	_ = l.closer.Close()
	setDefault(&Logger{})
}

// Enabled reports whether events are written.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Event writes a structured log entry.
func (l *Logger) Event(event string, data map[string]any) {
	if !l.Enabled() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	entry := map[string]any{
		"seq":   l.seq,
		"ts":    l.now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(l.w, "%s\n", b)
}

// Error logs an error with the operation it happened in.
func (l *Logger) Error(context string, err error) {
	if err == nil {
		return
	}
	l.Event("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}

// Event logs to the package logger.
func Event(event string, data map[string]any) {
	Default().Event(event, data)
}

// Error logs an error to the package logger.
func Error(context string, err error) {
	Default().Error(context, err)
}
