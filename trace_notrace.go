//go:build notrace

package xylem

import (
	"context"
	"log/slog"
)

// No-op implementations when built with -tags notrace

const TracingEnabled = false

var nullLogger = slog.New(slog.DiscardHandler)

// WithTraceLogger adds a trace logger to the context - no-op version
func WithTraceLogger(ctx context.Context, _ *slog.Logger) context.Context {
	return ctx
}

func getTraceLogFromContext(context.Context) *slog.Logger {
	return nullLogger
}

// TraceEvent logs a structured event - no-op version
func TraceEvent(context.Context, string, ...slog.Attr) {}

// TraceError logs an error - no-op version
func TraceError(context.Context, error, string, ...slog.Attr) {}
