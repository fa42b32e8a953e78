package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the kiosk logger. Logs go to stderr so they never tear the
// terminal UI drawn on stdout; an empty level falls back to info.
func New(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	return logger
}

// NewWriter builds a logger writing to the given sink, used when the TUI
// owns the terminal and logs belong in a file.
func NewWriter(level string, w io.Writer) *logrus.Logger {
	logger := New(level)
	logger.SetOutput(w)
	return logger
}
