package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/scene.log"

const timeFormat = "2006-01-02 15:04:05"

// Logger is a levelled key/value logger. Every line goes to the log file on disk and is
// also kept in memory so it can be shown or inspected later.
type Logger struct {
	mu    sync.Mutex
	lines []string
	file  *os.File
	hl    hclog.Logger
}

// New returns a Logger appending to path, creating its directory. If the file cannot be
// opened the logger falls back to stderr.
func New(path string) *Logger {
	l := &Logger{lines: make([]string, 0)}
	var out io.Writer = os.Stderr
	if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			l.file = f
			out = f
		}
	}
	l.hl = hclog.New(&hclog.LoggerOptions{
		Name:       "saturn",
		Level:      hclog.Info,
		Output:     io.MultiWriter(out, memory{l}),
		TimeFormat: timeFormat,
	})
	return l
}

// memory appends each written line to the in-memory buffer.
type memory struct{ l *Logger }

func (m memory) Write(p []byte) (int, error) {
	text := strings.TrimRight(string(p), "\n")
	m.l.mu.Lock()
	m.l.lines = append(m.l.lines, strings.Split(text, "\n")...)
	m.l.mu.Unlock()
	return len(p), nil
}

// Info logs msg with alternating key/value pairs.
func (l *Logger) Info(msg string, args ...any) { l.hl.Info(msg, args...) }

// Warn logs at warning level.
func (l *Logger) Warn(msg string, args ...any) { l.hl.Warn(msg, args...) }

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) { l.hl.Error(msg, args...) }

// SetDebug toggles debug-level output.
func (l *Logger) SetDebug(on bool) {
	if on {
		l.hl.SetLevel(hclog.Debug)
		return
	}
	l.hl.SetLevel(hclog.Info)
}

// Debug logs at debug level; dropped unless SetDebug(true).
func (l *Logger) Debug(msg string, args ...any) { l.hl.Debug(msg, args...) }

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
