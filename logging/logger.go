// Package logging prints levelled key=value messages.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Logger writes "[LEVEL] msg k=v ..." lines. Debug lines are dropped
// unless verbose is on.
type Logger struct {
	mu      sync.Mutex
	prefix  string
	logger  *log.Logger
	verbose bool
}

// New returns a logger writing to stderr with the given component prefix.
func New(prefix string) *Logger {
	return NewWithWriter(prefix, os.Stderr)
}

// NewWithWriter returns a logger writing to w without timestamps.
func NewWithWriter(prefix string, w io.Writer) *Logger {
	p := ""
	if prefix != "" {
		p = fmt.Sprintf("[%s] ", prefix)
	}
	return &Logger{prefix: prefix, logger: log.New(w, p, 0)}
}

// Discard is a logger that prints nothing.
func Discard() *Logger {
	return NewWithWriter("", io.Discard)
}

// SetVerbose turns Debug output on or off.
func (l *Logger) SetVerbose(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = v
}

// With returns a logger sharing the output under another prefix.
func (l *Logger) With(prefix string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := &Logger{prefix: prefix, verbose: l.verbose}
	n.logger = log.New(l.logger.Writer(), fmt.Sprintf("[%s] ", prefix), l.logger.Flags())
	return n
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.logWithKV("INFO", msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.logWithKV("WARN", msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.logWithKV("ERROR", msg, keysAndValues...)
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.mu.Lock()
	v := l.verbose
	l.mu.Unlock()
	if v {
		l.logWithKV("DEBUG", msg, keysAndValues...)
	}
}

func (l *Logger) logWithKV(level, msg string, keysAndValues ...any) {
	var kv strings.Builder
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fmt.Fprintf(&kv, " %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	l.logger.Printf("[%s] %s%s", level, msg, kv.String())
}
