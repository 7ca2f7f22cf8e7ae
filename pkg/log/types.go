package log

// Logger logs structured messages. keysAndValues are alternating keys and
// values, e.g. "engine", "geth", "op", "sign".
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	// Fatal logs at fatal level. The zap implementation exits the process.
	Fatal(msg string, keysAndValues ...any)

	// WithKV returns a logger that adds key and value to every entry.
	WithKV(key string, value any) Logger
	// GetAllKV returns the pairs added through WithKV.
	GetAllKV() []any
	// WithName returns a logger named after a component. Names nest with dots.
	WithName(name string) Logger
	Name() string
	// AddCallerSkip returns a logger that reports the caller skip frames higher.
	// Implementations without caller information return themselves.
	AddCallerSkip(skip int) Logger
}

// Level is the severity of an entry.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

// SpanEventRecorder records log entries onto a trace span.
type SpanEventRecorder interface {
	TraceID() string
	SpanID() string

	RecordEvent(name string, keysAndValues ...any)
	// RecordError records the event and marks the span as failed.
	RecordError(name string, keysAndValues ...any)
}
