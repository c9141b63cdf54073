package core

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// RunEvent is one JSONL entry in the run log.
type RunEvent struct {
	Timestamp string            `json:"timestamp"`
	Event     string            `json:"event"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// RunLogger writes engine lifecycle events as JSON lines to a log file and
// the console. Acquiring the file sink is best-effort: if the file cannot be
// opened the logger degrades to console-only and the pipeline carries on.
type RunLogger struct {
	mu     sync.Mutex
	writer io.Writer
	file   *os.File
}

// NewRunLogger opens path for appending and tees events to stderr. An
// unopenable path degrades to console-only with a warning, never an error.
func NewRunLogger(path string) *RunLogger {
	l := &RunLogger{writer: os.Stderr}
	if path == "" {
		return l
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not create log file %s: %v\n", path, err)
		return l
	}
	l.file = f
	l.writer = io.MultiWriter(f, os.Stderr)
	return l
}

// Event appends one entry to the run log. Logging failures are swallowed;
// the log must never abort a redaction.
func (l *RunLogger) Event(event string, fields map[string]string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := RunEvent{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Event:     event,
		Fields:    fields,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	fmt.Fprintln(l.writer, string(data))
}

// Close releases the file sink if one was acquired.
func (l *RunLogger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.file.Close()
		l.file = nil
		l.writer = os.Stderr
	}
}
