package stanza

import (
	"context"
	"io"
	"log/slog"
)

type traceLoggerKey struct{}

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// WithTraceLogger attaches a trace logger to the context. The parser
// emits an event per element open/close when one is installed; without
// one, tracing costs nothing.
func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	if _, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return ctx
	}
	return context.WithValue(ctx, traceLoggerKey{}, tlog)
}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	if tlog, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return tlog
	}
	return nullLogger
}
