package logging

import "github.com/sirupsen/logrus"

// LogrusAdapter writes Logger calls through a logrus entry. Fields bound with
// WithField, WithFields or WithError stay on the entry, so every logger
// derived from it repeats them.
type LogrusAdapter struct {
	entry *logrus.Entry
}

// NewLogrusAdapter wraps base. A nil base gets a default logrus logger
// writing text to stderr at info level.
func NewLogrusAdapter(base *logrus.Logger) *LogrusAdapter {
	if base == nil {
		base = logrus.New()
	}
	return &LogrusAdapter{entry: logrus.NewEntry(base)}
}

func (a *LogrusAdapter) Debug(msg string, fields ...Field) { a.log(logrus.DebugLevel, msg, fields) }
func (a *LogrusAdapter) Info(msg string, fields ...Field)  { a.log(logrus.InfoLevel, msg, fields) }
func (a *LogrusAdapter) Warn(msg string, fields ...Field)  { a.log(logrus.WarnLevel, msg, fields) }
func (a *LogrusAdapter) Error(msg string, fields ...Field) { a.log(logrus.ErrorLevel, msg, fields) }

func (a *LogrusAdapter) WithError(err error) Logger {
	return &LogrusAdapter{entry: a.entry.WithError(err)}
}

func (a *LogrusAdapter) WithField(key string, value interface{}) Logger {
	return &LogrusAdapter{entry: a.entry.WithField(key, value)}
}

func (a *LogrusAdapter) WithFields(fields ...Field) Logger {
	return &LogrusAdapter{entry: a.entry.WithFields(logrusFields(fields))}
}

func (a *LogrusAdapter) log(level logrus.Level, msg string, fields []Field) {
	if !a.entry.Logger.IsLevelEnabled(level) {
		return
	}
	entry := a.entry
	if len(fields) > 0 {
		entry = entry.WithFields(logrusFields(fields))
	}
	entry.Log(level, msg)
}

// logrusFields keeps the last value when a key repeats.
func logrusFields(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}
