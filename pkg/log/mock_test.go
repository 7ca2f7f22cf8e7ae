package log_test

import "github.com/blockchainethdev/ethereum-util/pkg/log"

var _ log.Logger = &MockLogger{}

// MockLogger captures the last entry. Derived loggers share state with their
// parent so tests can inspect them through the original pointer.
type MockLogger struct {
	lastEntry     MockLogEntry
	name          string
	keysAndValues []any
	callerSkip    int
}

type MockLogEntry struct {
	Level         log.Level
	Message       string
	KeysAndValues []any
}

func NewMockLogger() *MockLogger {
	return &MockLogger{name: "mock", keysAndValues: []any{}}
}

func (ml *MockLogger) Debug(msg string, kv ...any) { ml.capture(log.LevelDebug, msg, kv) }
func (ml *MockLogger) Info(msg string, kv ...any)  { ml.capture(log.LevelInfo, msg, kv) }
func (ml *MockLogger) Warn(msg string, kv ...any)  { ml.capture(log.LevelWarn, msg, kv) }
func (ml *MockLogger) Error(msg string, kv ...any) { ml.capture(log.LevelError, msg, kv) }
func (ml *MockLogger) Fatal(msg string, kv ...any) { ml.capture(log.LevelFatal, msg, kv) }

func (ml *MockLogger) WithKV(key string, value any) log.Logger {
	ml.keysAndValues = append(ml.keysAndValues, key, value)
	return ml
}

func (ml *MockLogger) GetAllKV() []any { return ml.keysAndValues }

func (ml *MockLogger) WithName(name string) log.Logger {
	ml.name = name
	return ml
}

func (ml *MockLogger) Name() string { return ml.name }

func (ml *MockLogger) AddCallerSkip(skip int) log.Logger {
	ml.callerSkip += skip
	return ml
}

func (ml *MockLogger) LastEntry() MockLogEntry { return ml.lastEntry }
func (ml *MockLogger) CallerSkip() int         { return ml.callerSkip }

func (ml *MockLogger) capture(level log.Level, msg string, kv []any) {
	all := append(append([]any{}, ml.keysAndValues...), kv...)
	ml.lastEntry = MockLogEntry{Level: level, Message: msg, KeysAndValues: all}
}

// MockSpanEventRecorder captures the last recorded event.
type MockSpanEventRecorder struct {
	traceID   string
	spanID    string
	hasErr    bool
	lastEvent []any
}

func NewMockSpanEventRecorder(traceID, spanID string) *MockSpanEventRecorder {
	return &MockSpanEventRecorder{traceID: traceID, spanID: spanID}
}

func (ser *MockSpanEventRecorder) TraceID() string { return ser.traceID }
func (ser *MockSpanEventRecorder) SpanID() string  { return ser.spanID }

func (ser *MockSpanEventRecorder) RecordEvent(name string, kv ...any) {
	ser.lastEvent = append([]any{"msg", name}, kv...)
}

func (ser *MockSpanEventRecorder) RecordError(name string, kv ...any) {
	ser.hasErr = true
	ser.lastEvent = append([]any{"msg", name}, kv...)
}

func (ser *MockSpanEventRecorder) LastEvent() []any { return ser.lastEvent }
func (ser *MockSpanEventRecorder) HasError() bool   { return ser.hasErr }
