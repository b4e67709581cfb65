// Package logger provides the leveled printf-style logger used across
// the service. Messages go to stderr and, when configured, to a file.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func parseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "", "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level: %q", s)
	}
}

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	file  *os.File
	level Level
}

// New creates a logger writing to stderr and, if filePath is non-empty,
// to that file as well (created or appended).
func New(filePath, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	l := &Logger{out: os.Stderr, level: lvl}

	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", filePath, err)
		}
		l.file = f
		l.out = io.MultiWriter(os.Stderr, f)
	}

	return l, nil
}

func (l *Logger) logf(lvl Level, format string, v ...interface{}) {
	if lvl < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.out, "%s [%s] %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		lvl,
		fmt.Sprintf(format, v...),
	)
}

func (l *Logger) Debug(format string, v ...interface{}) { l.logf(DebugLevel, format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.logf(InfoLevel, format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.logf(WarnLevel, format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.logf(ErrorLevel, format, v...) }

// Fatal logs at error level and exits the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.logf(ErrorLevel, format, v...)
	l.Close()
	os.Exit(1)
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.out = os.Stderr
		return err
	}
	return nil
}
