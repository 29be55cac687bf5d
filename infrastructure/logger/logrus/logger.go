// ABOUTME: Logger implementation backed by logrus
// ABOUTME: Writes JSON or text entries to stdout and optionally to a lumberjack-rotated file

package logrus

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"healthinfo-api/pkg/config"
)

// Logger implements interfaces.Logger
type Logger struct {
	entry *logrus.Entry
	file  *lumberjack.Logger
}

// New builds a logger from cfg. service is attached to every entry.
func New(cfg config.LogConfig, service string) (*Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	base := logrus.New()
	base.SetLevel(level)
	if cfg.Format == "text" {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		base.SetFormatter(&logrus.JSONFormatter{})
	}

	l := &Logger{}
	var out io.Writer = os.Stdout
	if cfg.File != "" {
		l.file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, l.file)
	}
	base.SetOutput(out)

	l.entry = base.WithField("service", service)
	return l, nil
}

// NewWithWriter builds a JSON logger writing to w, for tests and tools
func NewWithWriter(w io.Writer, level logrus.Level) *Logger {
	base := logrus.New()
	base.SetOutput(w)
	base.SetLevel(level)
	base.SetFormatter(&logrus.JSONFormatter{})
	return &Logger{entry: logrus.NewEntry(base)}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}

// Close flushes and closes the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
