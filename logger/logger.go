package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options selects level, format and destination of a logger
type Options struct {
	Level  string    // logrus level name, falls back to info
	Format string    // "json" or "text"
	Output io.Writer // nil means stderr
}

// New builds a logrus logger from opts
func New(opts Options) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(strings.TrimSpace(opts.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(opts.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	if opts.Output == nil {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(opts.Output)
	}
	return log
}

// Discard returns a logger that drops everything, for tests and the no-log mode
func Discard() *logrus.Logger {
	return New(Options{Level: "panic", Output: io.Discard})
}

// OpenFile opens path for appending, creating the file but not its directory
func OpenFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
