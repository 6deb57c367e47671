package logger

import (
	"time"

	"github.com/rs/zerolog"
)

// LogEventAdapter adapts zerolog events to LogEvent.
// Events below the logger's level wrap a nil *zerolog.Event, on which every
// zerolog method is a no-op.
type LogEventAdapter struct {
	event *zerolog.Event
}

func (lea *LogEventAdapter) Msg(msg string) {
	lea.event.Msg(msg)
}

func (lea *LogEventAdapter) Msgf(format string, args ...any) {
	lea.event.Msgf(format, args...)
}

// Err adds an error to the log event
func (lea *LogEventAdapter) Err(err error) LogEvent {
	return &LogEventAdapter{event: lea.event.Err(err)}
}

// Str adds a string field to the log event
func (lea *LogEventAdapter) Str(key, value string) LogEvent {
	return &LogEventAdapter{event: lea.event.Str(key, value)}
}

// Int adds an integer field to the log event
func (lea *LogEventAdapter) Int(key string, value int) LogEvent {
	return &LogEventAdapter{event: lea.event.Int(key, value)}
}

// Bool adds a boolean field to the log event
func (lea *LogEventAdapter) Bool(key string, value bool) LogEvent {
	return &LogEventAdapter{event: lea.event.Bool(key, value)}
}

// Dur adds a duration field to the log event
func (lea *LogEventAdapter) Dur(key string, d time.Duration) LogEvent {
	return &LogEventAdapter{event: lea.event.Dur(key, d)}
}

// Strs adds a string slice, typically field or contract names.
func (lea *LogEventAdapter) Strs(key string, values []string) LogEvent {
	return &LogEventAdapter{event: lea.event.Strs(key, values)}
}
