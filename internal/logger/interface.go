package logger

import "context"

// Logger is the logging surface shared by every package.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})

	// WithFields returns a child Logger that stamps every entry with fields.
	WithFields(fields map[string]interface{}) Logger
}
