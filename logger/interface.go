// Package logger defines the structured logger shared by the paramspec
// packages. Schema building, annotation probing and the docs server all log
// through it so a single zerolog configuration governs every component.
package logger

import "time"

// Logger creates leveled events. Component returns a child logger tagged
// with the emitting package, e.g. "schema" or "server".
type Logger interface {
	Info() LogEvent
	Error() LogEvent
	Debug() LogEvent
	Warn() LogEvent
	Component(name string) Logger
	WithFields(fields map[string]any) Logger
}

// LogEvent is a single structured entry; nothing is written until Msg or Msgf.
type LogEvent interface {
	Msg(msg string)
	Msgf(format string, args ...any)
	Err(err error) LogEvent
	Str(key, value string) LogEvent
	Strs(key string, values []string) LogEvent
	Int(key string, value int) LogEvent
	Bool(key string, value bool) LogEvent
	Dur(key string, d time.Duration) LogEvent
}
