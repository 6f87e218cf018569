package logger

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger is a Logger implementation that sends all logs to stdout using
// the Logrus package to get nice formatting
type LogrusLogger struct {
	logger *logrus.Logger
	level  *logrus.Level
}

var _ = Logger((*LogrusLogger)(nil))

type LogrusEntry struct {
	entry *logrus.Entry
	level logrus.Level
}

func (l *LogrusLogger) Start() error {
	l.logger = logrus.New()
	if l.level != nil {
		l.logger.SetLevel(*l.level)
	}
	return nil
}

func (l *LogrusLogger) entryAt(level logrus.Level) Entry {
	return &LogrusEntry{
		entry: logrus.NewEntry(l.logger),
		level: level,
	}
}

func (l *LogrusLogger) Debug() Entry { return l.entryAt(logrus.DebugLevel) }
func (l *LogrusLogger) Info() Entry  { return l.entryAt(logrus.InfoLevel) }
func (l *LogrusLogger) Warn() Entry  { return l.entryAt(logrus.WarnLevel) }
func (l *LogrusLogger) Error() Entry { return l.entryAt(logrus.ErrorLevel) }

func (l *LogrusLogger) SetLevel(level string) error {
	logrusLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	// record the choice and set it if we're already initialized
	l.level = &logrusLevel
	if l.logger != nil {
		l.logger.SetLevel(logrusLevel)
	}
	return nil
}

func (e *LogrusEntry) WithField(key string, value any) Entry {
	return &LogrusEntry{
		entry: e.entry.WithField(key, value),
		level: e.level,
	}
}

func (e *LogrusEntry) WithFields(fields map[string]any) Entry {
	return &LogrusEntry{
		entry: e.entry.WithFields(fields),
		level: e.level,
	}
}

func (e *LogrusEntry) Logf(f string, args ...any) {
	switch e.level {
	case logrus.DebugLevel:
		e.entry.Debugf(f, args...)
	case logrus.InfoLevel:
		e.entry.Infof(f, args...)
	case logrus.WarnLevel:
		e.entry.Warnf(f, args...)
	default:
		e.entry.Errorf(f, args...)
	}
}
