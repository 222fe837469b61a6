package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"testing"
)

// LogEntry is one decoded JSON log line.
type LogEntry map[string]any

// Str returns the string attribute key, or "" when absent or not a string.
func (e LogEntry) Str(key string) string {
	s, _ := e[key].(string)
	return s
}

// TestLogBuffer collects log output from concurrent handlers in tests.
type TestLogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write implements io.Writer.
func (b *TestLogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns everything written so far.
func (b *TestLogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Entries decodes every non-empty line written so far.
func (b *TestLogBuffer) Entries() ([]LogEntry, error) {
	var entries []LogEntry
	sc := bufio.NewScanner(bytes.NewReader([]byte(b.String())))
	for line := 1; sc.Scan(); line++ {
		if len(bytes.TrimSpace(sc.Bytes())) == 0 {
			continue
		}
		var entry LogEntry
		if err := json.Unmarshal(sc.Bytes(), &entry); err != nil {
			return nil, fmt.Errorf("log line %d: %w", line, err)
		}
		entries = append(entries, entry)
	}
	return entries, sc.Err()
}

// WithMessage returns the entries whose msg equals msg.
func (b *TestLogBuffer) WithMessage(msg string) ([]LogEntry, error) {
	all, err := b.Entries()
	if err != nil {
		return nil, err
	}
	var out []LogEntry
	for _, e := range all {
		if e.Str(slog.MessageKey) == msg {
			out = append(out, e)
		}
	}
	return out, nil
}

// GetTestLogger returns a debug-level JSON logger writing into a fresh buffer.
func GetTestLogger(t *testing.T) (*slog.Logger, *TestLogBuffer) {
	t.Helper()
	buf := &TestLogBuffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}
