package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type implLogger struct {
	entry *logrus.Entry
	level string
}

// New creates a text-formatted Logger writing to stdout.
func New(level string) Logger {
	return NewWithFormat(level, "text", os.Stdout)
}

// NewWithFormat creates a Logger with the given level and format ("text" or "json").
func NewWithFormat(level, format string, out io.Writer) Logger {
	base := logrus.New()
	base.SetOutput(out)
	if strings.EqualFold(format, "json") {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	l := &implLogger{
		entry: logrus.NewEntry(base),
		level: strings.ToLower(level),
	}
	base.SetLevel(l.logrusLevel())
	return l
}

func (l *implLogger) logrusLevel() logrus.Level {
	switch l.level {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.entry.WithContext(ctx).Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.entry.WithContext(ctx).Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.entry.WithContext(ctx).Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.entry.WithContext(ctx).Errorf(msg, args...)
}

func (l *implLogger) WithFields(fields map[string]interface{}) Logger {
	return &implLogger{
		entry: l.entry.WithFields(logrus.Fields(fields)),
		level: l.level,
	}
}
