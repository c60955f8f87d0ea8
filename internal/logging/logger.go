// Package logging builds the application logger. Output goes to stderr
// through go-colorable so ANSI colours also work on Windows consoles.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Field keys shared by all components
const (
	FieldComponent = "component"
	FieldTaskID    = "task_id"
)

// New returns a logger writing to stderr at the given level. An unknown
// level falls back to info and is reported once.
func New(level string) *logrus.Logger {
	return NewWithOutput(level, colorable.NewColorableStderr(), isatty.IsTerminal(os.Stderr.Fd()))
}

// NewWithOutput returns a logger writing to out. Colours are forced on for
// terminals and turned off otherwise.
func NewWithOutput(level string, out io.Writer, terminal bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		ForceColors:     terminal,
		DisableColors:   !terminal,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level %s, defaulting to info", level)
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	return logger
}

// Component returns an entry tagged with the component name
func Component(logger logrus.FieldLogger, name string) *logrus.Entry {
	return logger.WithField(FieldComponent, name)
}

// Discard returns a logger that drops everything, for tests
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
