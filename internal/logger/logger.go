package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Context keys under which middleware stores request identity.
const (
	ContextKeyRequestID   = "request_id"
	ContextKeyVolunteerID = "volunteer_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the request identity when present
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField(ContextKeyRequestID, requestID)
	}
	if volunteerID, ok := ctx.Value(ContextKeyVolunteerID).(string); ok && volunteerID != "" {
		logger.Entry = logger.Entry.WithField(ContextKeyVolunteerID, volunteerID)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
