package logger

import (
	"fmt"
	"maps"
	"sync"

	"github.com/honeycombio/wsample/config"
)

// MockLogger records everything logged through it so tests can assert on it.
type MockLogger struct {
	Events []*MockLoggerEvent
	mutex  sync.Mutex
}

var _ = Logger((*MockLogger)(nil))

type MockLoggerEvent struct {
	l       *MockLogger
	Level   config.Level
	Fields  map[string]any
	Message string
}

func (l *MockLogger) at(level config.Level) Entry {
	return &MockLoggerEvent{
		l:      l,
		Level:  level,
		Fields: make(map[string]any),
	}
}

func (l *MockLogger) Debug() Entry { return l.at(config.DebugLevel) }
func (l *MockLogger) Info() Entry  { return l.at(config.InfoLevel) }
func (l *MockLogger) Warn() Entry  { return l.at(config.WarnLevel) }
func (l *MockLogger) Error() Entry { return l.at(config.ErrorLevel) }

func (l *MockLogger) SetLevel(level string) error { return nil }

func (e *MockLoggerEvent) WithField(key string, value any) Entry {
	e.Fields[key] = value
	return e
}

func (e *MockLoggerEvent) WithFields(fields map[string]any) Entry {
	maps.Copy(e.Fields, fields)
	return e
}

func (e *MockLoggerEvent) Logf(f string, args ...any) {
	e.Message = fmt.Sprintf(f, args...)
	e.l.mutex.Lock()
	defer e.l.mutex.Unlock()
	e.l.Events = append(e.l.Events, e)
}
