// Package logger holds the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Options selects level, format and destination.
type Options struct {
	Level  string // debug, info, warn, ... (default info)
	Format string // "json" or text
	File   string // append to this file instead of stderr
}

// Init configures Log. It returns a closer for the log file, which is a
// no-op when logging to stderr.
func Init(opts Options) (func() error, error) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var out io.Writer = os.Stderr
	closer := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return closer, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f.Close
	}
	Log.SetOutput(out)
	return closer, nil
}

// Discard silences Log. Tests that drive the sandbox call it.
func Discard() {
	Log.SetOutput(io.Discard)
}
