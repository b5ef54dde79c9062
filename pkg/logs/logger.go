package logs

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes JSON lines with a timestamp and event fields.
type Logger struct {
	mu      sync.Mutex
	w       *bufio.Writer
	c       io.Closer
	enabled bool
	now     func() time.Time
}

// NewFromEnv returns a logger if GAPBUF_LOG is set to a truthy value
// or if GAPBUF_LOG_FILE is provided. Otherwise it returns a disabled logger.
// When enabled and no file is specified, it writes to ./gapbuf.log.
func NewFromEnv() *Logger {
	lf := os.Getenv("GAPBUF_LOG_FILE")
	enabled := false
	if v := os.Getenv("GAPBUF_LOG"); v != "" && v != "0" && v != "false" {
		enabled = true
	}
	if lf != "" {
		enabled = true
	}
	if !enabled {
		return Disabled()
	}
	if lf == "" {
		lf = filepath.Join(".", "gapbuf.log")
	}
	return NewFile(lf)
}

// NewFile returns a logger appending to the named file. If the file cannot
// be opened, logging is disabled silently.
func NewFile(path string) *Logger {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return Disabled()
	}
	l := New(f)
	l.c = f
	return l
}

// New returns an enabled logger writing to w. Close does not close w.
func New(w io.Writer) *Logger {
	return &Logger{w: bufio.NewWriter(w), enabled: true, now: time.Now}
}

// Disabled returns a logger that drops every event.
func Disabled() *Logger {
	return &Logger{enabled: false}
}

// Enabled reports whether events are written anywhere.
func (l *Logger) Enabled() bool { return l.enabled }

// Close flushes and closes the underlying file if enabled.
func (l *Logger) Close() {
	if !l.enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.w.Flush()
	if l.c != nil {
		_ = l.c.Close()
	}
}

// Event writes a JSON line with the event name and fields.
// Common fields: op, index, count, len, cursor, cap, passed, err.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.enabled {
		return
	}
	rec := map[string]any{
		"time":  l.now().Format(time.RFC3339Nano),
		"event": event,
	}
	for k, v := range fields {
		rec[k] = v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	enc := json.NewEncoder(l.w)
	_ = enc.Encode(rec)
	_ = l.w.Flush()
}
