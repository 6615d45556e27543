// Package logging provides subsystem-tagged logging for pocketdash. In CLI
// mode entries go to a slog text handler; in TUI mode they are routed to a
// buffered channel instead, so log lines never corrupt the rendered frame.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// LogLevel defines the severity of a log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy fmt.Stringer.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel maps a LogLevel to the corresponding slog level.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogEntry is the structured entry delivered to the TUI channel.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Subsystem string
	Message   string
	Err       error
}

var (
	defaultLogger *slog.Logger
	tuiLogChannel chan LogEntry
	isTUIMode     bool
)

const tuiChannelBufferSize = 1024

// InitForTUI initializes logging for TUI mode. Entries are delivered on the
// returned channel; the TUI drains it and renders entries in its activity
// log overlay.
func InitForTUI(level LogLevel) <-chan LogEntry {
	isTUIMode = true
	tuiLogChannel = make(chan LogEntry, tuiChannelBufferSize)
	// Fallback handler for anything logged before the TUI starts draining.
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level.SlogLevel()}))
	slog.SetDefault(defaultLogger)
	return tuiLogChannel
}

// InitForCLI initializes logging for plain CLI mode, writing to output.
func InitForCLI(level LogLevel, output io.Writer) {
	isTUIMode = false
	defaultLogger = slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level.SlogLevel()}))
	slog.SetDefault(defaultLogger)
}

func logInternal(level LogLevel, subsystem string, err error, format string, args ...interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	if isTUIMode {
		if tuiLogChannel == nil {
			fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", level, subsystem, msg)
			return
		}
		entry := LogEntry{
			Timestamp: time.Now(),
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		// Non-blocking send: the dashboard must keep rendering even if the
		// log buffer fills up, so overflow entries are dropped.
		select {
		case tuiLogChannel <- entry:
		default:
		}
		return
	}

	if defaultLogger == nil {
		InitForCLI(LevelInfo, os.Stderr)
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	defaultLogger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, format string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, format, args...)
}

// Info logs an informational message.
func Info(subsystem string, format string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, format, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, format string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, format, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, format string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, format, args...)
}

// CloseTUIChannel closes the TUI log channel on shutdown.
func CloseTUIChannel() {
	if tuiLogChannel != nil {
		close(tuiLogChannel)
	}
}
