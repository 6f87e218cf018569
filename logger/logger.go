package logger

import (
	"fmt"

	"github.com/honeycombio/wsample/config"
)

type Logger interface {
	Debug() Entry
	Info() Entry
	Warn() Entry
	Error() Entry
	// SetLevel sets the logging level (debug, info, warn, error)
	SetLevel(level string) error
}

type Entry interface {
	WithField(key string, value any) Entry
	WithFields(fields map[string]any) Entry
	Logf(f string, args ...any)
}

func GetLoggerImplementation(c config.Config) (Logger, error) {
	switch c.GetLoggerType() {
	case "logrus":
		return &LogrusLogger{}, nil
	case "null":
		return &NullLogger{}, nil
	default:
		return nil, fmt.Errorf("unknown logger type %s", c.GetLoggerType())
	}
}
