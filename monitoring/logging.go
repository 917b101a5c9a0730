// Package monitoring provides the structured event logging used by the
// priority queue. Events are written as JSON lines.
package monitoring

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Component string         `json:"component"`
	EventType string         `json:"event_type"`
	Details   map[string]any `json:"details,omitempty"`
}

// Logger receives queue events.
type Logger interface {
	Log(level LogLevel, eventType string, message string, details map[string]any)
}

type jsonLogger struct {
	component string
	minLevel  LogLevel
	now       func() time.Time

	mu  sync.Mutex
	enc *json.Encoder
}

// NewLogger returns a Logger that encodes one LogEntry per line to w.
// Entries below minLevel are dropped.
func NewLogger(component string, w io.Writer, minLevel LogLevel) Logger {
	return &jsonLogger{
		component: component,
		minLevel:  minLevel,
		now:       time.Now,
		enc:       json.NewEncoder(w),
	}
}

func (l *jsonLogger) Log(level LogLevel, eventType string, message string, details map[string]any) {
	if level < l.minLevel {
		return
	}
	entry := LogEntry{
		Timestamp: l.now(),
		Level:     level.String(),
		Message:   message,
		Component: l.component,
		EventType: eventType,
		Details:   details,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(entry)
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
