package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// LogFormatPlain is a human readable console format.
	LogFormatPlain = "plain"
	// LogFormatJSON emits one JSON object per line.
	LogFormatJSON = "json"

	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelError = "error"
)

// Logger is what every gosets component that logs should take.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})

	With(keyvals ...interface{}) Logger
}

type defaultLogger struct {
	zerolog.Logger
}

var _ Logger = (*defaultLogger)(nil)

// NewDefaultLogger returns a logger writing to stderr in the given format
// at the given level.
func NewDefaultLogger(format, level string) (Logger, error) {
	return NewLogger(os.Stderr, format, level)
}

// NewLogger returns a logger writing to w.
func NewLogger(w io.Writer, format, level string) (Logger, error) {
	switch strings.ToLower(format) {
	case LogFormatPlain, "text", "":
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: "15:04:05",
		}
	case LogFormatJSON:
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level (%s): %w", level, err)
	}

	return &defaultLogger{
		Logger: zerolog.New(w).Level(lvl).With().Timestamp().Logger(),
	}, nil
}

// MustNewDefaultLogger panics if the format or level is invalid.
func MustNewDefaultLogger(format, level string) Logger {
	logger, err := NewDefaultLogger(format, level)
	if err != nil {
		panic(err)
	}
	return logger
}

func (l defaultLogger) Info(msg string, keyvals ...interface{}) {
	l.Logger.Info().Fields(getLogFields(keyvals...)).Msg(msg)
}

func (l defaultLogger) Error(msg string, keyvals ...interface{}) {
	l.Logger.Error().Fields(getLogFields(keyvals...)).Msg(msg)
}

func (l defaultLogger) Debug(msg string, keyvals ...interface{}) {
	l.Logger.Debug().Fields(getLogFields(keyvals...)).Msg(msg)
}

func (l defaultLogger) With(keyvals ...interface{}) Logger {
	return &defaultLogger{
		Logger: l.Logger.With().Fields(getLogFields(keyvals...)).Logger(),
	}
}

// getLogFields turns alternating key/value pairs into a field map. A dangling
// key is logged with a nil value.
func getLogFields(keyvals ...interface{}) map[string]interface{} {
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, nil)
	}

	fields := make(map[string]interface{}, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		fields[fmt.Sprint(keyvals[i])] = keyvals[i+1]
	}
	return fields
}
