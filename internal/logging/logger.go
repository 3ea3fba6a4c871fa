// Package logging provides a logging abstraction layer that decouples the application
// from specific logging frameworks. Core packages never log directly; the commands
// and the report pipeline inject a Logger where output is wanted.
package logging

// Logger defines the interface for structured logging throughout the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// NopLogger discards everything. It is the default for components built without a logger.
type NopLogger struct{}

// NewNopLogger returns a Logger that discards all entries.
func NewNopLogger() Logger { return NopLogger{} }

func (NopLogger) Debug(string, ...Field)                 {}
func (NopLogger) Info(string, ...Field)                  {}
func (NopLogger) Warn(string, ...Field)                  {}
func (NopLogger) Error(string, ...Field)                 {}
func (n NopLogger) WithError(error) Logger               { return n }
func (n NopLogger) WithField(string, interface{}) Logger { return n }
func (n NopLogger) WithFields(...Field) Logger           { return n }
