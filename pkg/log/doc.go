// Package log is the structured logger shared by the ethutil packages and the
// operator shell.
//
// Loggers are passed explicitly or carried in a context.Context; there is no
// package level logger. NewZapLogger builds the production implementation,
// NewNoopLogger discards everything and NewSpanLogger mirrors entries onto a
// trace span.
//
//	logger := log.NewZapLogger(log.Config{Format: "logfmt", Level: log.LevelDebug})
//	logger = logger.WithName("sign").WithKV("engine", "geth")
//	logger.Debug("signed digest", "recoveryParam", 35)
//
// When SetContextLogger receives a context holding a valid OpenTelemetry span,
// the logger is wrapped in a SpanLogger so that every entry is also recorded as
// a span event, and error entries mark the span as failed.
//
// Config is read with cleanenv from ETHUTIL_LOG_FORMAT (console, logfmt or
// json), ETHUTIL_LOG_LEVEL and ETHUTIL_LOG_OUTPUT (stderr, stdout or a path).
package log
