package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/xala-technologies/xala-cli/internal/infrastructure/logging"
	"github.com/xala-technologies/xala-cli/internal/ports"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	Component     string
}

// Logger wraps zerolog and satisfies ports.Logger. It is the sink used for
// --log-format=json and for non-terminal stderr.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp().Str("layer", "infrastructure")
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{base: ctx.Logger()}, nil
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// With implements ports.Logger.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return logging.NewNoOpLogger()
	}
	derived := Logger{base: l.base.With().Fields(logging.MergeFields(nil, fields, nil)).Logger()}
	return &derived
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Debug(), msg, fields)
}

// Info writes an informational log entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Info(), msg, fields)
}

// Success writes an informational entry tagged status=success.
func (l *Logger) Success(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Info().Str("status", "success"), msg, fields)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Warn(), msg, fields)
}

// Error writes an error log entry. An "error" field holding an error value is
// recorded through zerolog's Err so it renders under the standard key.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Error(), msg, fields)
}

func (l *Logger) emit(ctx context.Context, event *zerolog.Event, msg string, fields []interface{}) {
	if event == nil {
		return
	}
	if id := ports.GetCorrelationID(ctx); id != "" {
		event = event.Str("correlation_id", id)
	}
	pairs := logging.MergeFields(nil, fields, nil)
	for i := 0; i+1 < len(pairs); i += 2 {
		key := pairs[i].(string)
		if err, ok := pairs[i+1].(error); ok {
			if key == zerolog.ErrorFieldName {
				event = event.Err(err)
			} else {
				event = event.AnErr(key, err)
			}
			continue
		}
		event = event.Interface(key, pairs[i+1])
	}
	event.Msg(msg)
}

var _ ports.Logger = (*Logger)(nil)
