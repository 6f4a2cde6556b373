package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var std = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
	return l
}

// SetLevel sets the log level by name; unknown names keep the current level
func SetLevel(level string) {
	if parsed, err := logrus.ParseLevel(level); err == nil {
		std.SetLevel(parsed)
	}
}

// SetOutput redirects log output, mainly for tests
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// StdLogger returns the underlying logrus logger
func StdLogger() *logrus.Logger {
	return std
}

// Debugf logs a debug message
func Debugf(format string, args ...any) {
	std.Debugf(format, args...)
}

// Infof logs an informational message
func Infof(format string, args ...any) {
	std.Infof(format, args...)
}

// Warnf logs a warning message
func Warnf(format string, args ...any) {
	std.Warnf(format, args...)
}

// Errorf logs an error message
func Errorf(format string, args ...any) {
	std.Errorf(format, args...)
}

// Fatalf logs an error message and exits with a non-zero status
func Fatalf(format string, args ...any) {
	std.Fatalf(format, args...)
}
