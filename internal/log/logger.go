package log

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with a component tag attached to every record.
type Logger struct {
	*slog.Logger
	component string
}

// Config holds logger configuration. Writer defaults to stderr: stdout
// belongs to the terminal UI and must stay clean.
type Config struct {
	Level     slog.Level
	Component string
	Writer    io.Writer
}

// New creates a new logger with the given configuration.
func New(config Config) *Logger {
	w := config.Writer
	if w == nil {
		w = os.Stderr
	}
	component := config.Component
	if component == "" {
		component = ComponentApp
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: config.Level})
	return &Logger{
		Logger:    slog.New(handler).With(FieldComponent, component),
		component: component,
	}
}

// With returns a new logger with the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		component: l.component,
	}
}

// WithComponent returns a new logger tagged with a specific component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With(FieldComponent, component),
		component: component,
	}
}

// Component returns the logger's component name.
func (l *Logger) Component() string {
	return l.component
}

// SetDefault sets the default logger for the application so that plain
// slog calls in other packages flow through the same handler.
func SetDefault(logger *Logger) {
	slog.SetDefault(logger.Logger)
}
