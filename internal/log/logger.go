// Package log provides the shared application logger and colored CLI
// status output.
package log

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Logger wraps logrus with printf-style helpers and color support.
type Logger struct {
	*logrus.Logger
	green *color.Color
	red   *color.Color
	cyan  *color.Color
}

// New creates a logger. DEBUG=true in the environment enables debug level.
func New() *Logger {
	logger := &Logger{
		Logger: logrus.New(),
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		cyan:   color.New(color.FgCyan),
	}

	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006/01/02 15:04:05",
		FullTimestamp:   true,
		DisableSorting:  true,
	})
	logger.SetOutput(os.Stderr)

	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.Logger.Info(fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.Logger.Error(fmt.Sprintf(format, v...))
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.Logger.Debug(fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.Logger.Warn(fmt.Sprintf(format, v...))
}

// Step prints a CLI progress line without a trailing newline, so Done or
// Failed can complete it.
func (l *Logger) Step(format string, v ...interface{}) {
	fmt.Printf("→ "+format+"... ", v...)
}

func (l *Logger) Done(format string, v ...interface{}) {
	fmt.Println(l.green.Sprint("done") + formatSuffix(format, v...))
}

func (l *Logger) Failed() {
	fmt.Println(l.red.Sprint("failed"))
}

// Success prints a final colored confirmation line.
func (l *Logger) Success(format string, v ...interface{}) {
	fmt.Println(l.green.Sprint("✓ ") + fmt.Sprintf(format, v...))
}

func formatSuffix(format string, v ...interface{}) string {
	if format == "" {
		return ""
	}
	return " (" + fmt.Sprintf(format, v...) + ")"
}
