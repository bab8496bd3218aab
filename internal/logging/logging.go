package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	Logger  = zerolog.Nop()
	logFile *os.File
	console bool
)

// Options selects the log destination. The zero value logs warnings to stderr.
type Options struct {
	// Path of an append-only log file; empty means the console
	Path  string
	Debug bool
	// Console receives console output; defaults to os.Stderr
	Console io.Writer
	// Color enables ANSI colors on the console
	Color bool
}

// timestampHook adds timestamp at the end of each log event
type timestampHook struct{}

func (h timestampHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	e.Time(zerolog.TimestampFieldName, time.Now())
}

// DefaultPath returns the conventional log file location
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "i4", "i4.log")
}

// Init initializes the logging system with zerolog
func Init(opts Options) error {
	// Configure field names
	zerolog.MessageFieldName = "msg"
	zerolog.TimestampFieldName = "ts"

	level := zerolog.InfoLevel
	var w io.Writer
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
			return err
		}
		f, err := os.OpenFile(opts.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		logFile = f
		w = f
		console = false
	} else {
		out := opts.Console
		if out == nil {
			out = os.Stderr
		}
		w = zerolog.ConsoleWriter{Out: out, NoColor: !opts.Color, TimeFormat: time.Kitchen}
		console = true
		// The console is shared with command output
		level = zerolog.WarnLevel
	}
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	// Create logger with hook that adds timestamp last
	Logger = zerolog.New(w).
		Level(level).
		With().Str("run", uuid.NewString()).Logger().
		Hook(timestampHook{})

	return nil
}

// Close closes the log file
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Debug returns a debug level event
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info returns an info level event
func Info() *zerolog.Event {
	return Logger.Info()
}

// Failure returns an event for a failure that is also reported to the user.
// It is error level in a log file and debug level on the console, where the
// user already sees the error once.
func Failure() *zerolog.Event {
	if console {
		return Logger.Debug()
	}
	return Logger.Error()
}

// Warn returns a warn level event
func Warn() *zerolog.Event {
	return Logger.Warn()
}
