package slogx

import (
	"fmt"
	"log/slog"

	"github.com/casualjim/herald/pkg/reflectx"
)

// Error returns a slog.Attr representing the provided error.
// The attribute key is "error" and the value is the error's message.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// Stringer creates a slog.Attr with the provided key and the string representation
// of the given fmt.Stringer value.
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}

// Source describes the source scope of a registration or a fire.
// A nil source is reported as "global".
func Source(source any) slog.Attr {
	if source == nil {
		return slog.String(KeySource, "global")
	}
	if s, ok := source.(fmt.Stringer); ok {
		return slog.String(KeySource, s.String())
	}
	if reflectx.IsPointer(source) {
		return slog.String(KeySource, fmt.Sprintf("%T(%p)", source, source))
	}
	return slog.String(KeySource, fmt.Sprintf("%v", source))
}

const (
	// KeyLoggerName is the key for the logger name attribute.
	KeyLoggerName = "logger"

	// KeySource is the key for the event source attribute.
	KeySource = "source"
)

// LoggerName creates a slog.Attr with the provided logger name.
// The attribute key is defined by KeyLoggerName.
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}
