package logger

import (
	"io"
	"os"
	"sort"

	"github.com/rs/zerolog"
)

// ZerologAdapter implements Logger. Every line carries the application name
// and the component; extra fields are written in key order so lines for the
// same event always read the same.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// New builds a logger writing to stderr: human-readable for the console
// format, one JSON object per line otherwise.
func New(format Format, level zerolog.Level) *ZerologAdapter {
	return NewWriter(os.Stderr, format, level)
}

func NewWriter(w io.Writer, format Format, level zerolog.Level) *ZerologAdapter {
	if format == FormatConsole {
		w = zerolog.ConsoleWriter{
			Out: w,
			PartsOrder: []string{
				zerolog.TimestampFieldName,
				zerolog.LevelFieldName,
				"component",
				zerolog.MessageFieldName,
			},
			FieldsExclude: []string{"component"},
		}
	}
	return NewZerolog(w, level)
}

func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("app", AppName).
		Logger()

	return &ZerologAdapter{logger: logger}
}

// NewNop discards everything. Used by tests and by the CLI subcommands that
// never start the shell.
func NewNop() *ZerologAdapter {
	return &ZerologAdapter{logger: zerolog.Nop()}
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	write(z.logger.Info(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	write(z.logger.Error().Err(err), component, fields).Msg("operation failed")
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	write(z.logger.Warn(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	write(z.logger.Debug(), component, fields).Msg(message)
}

func write(event *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	event = event.Str("component", component)
	if len(fields) == 0 {
		return event
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		event = event.Interface(k, fields[k])
	}
	return event
}
