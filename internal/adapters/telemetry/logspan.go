package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/replica/internal/core/ports"
)

// SpanLogger implements sdktrace.SpanProcessor by logging every ended span at debug level.
type SpanLogger struct {
	logger ports.Logger
}

// NewSpanLogger returns a new SpanLogger.
func NewSpanLogger(logger ports.Logger) *SpanLogger {
	return &SpanLogger{logger: logger}
}

// OnStart does nothing.
func (*SpanLogger) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and failure, if any.
func (l *SpanLogger) OnEnd(s sdktrace.ReadOnlySpan) {
	if l.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime())
	if s.Status().Code == codes.Error {
		l.logger.Debug(fmt.Sprintf("span %s failed after %s: %s", s.Name(), elapsed, s.Status().Description))
		return
	}
	l.logger.Debug(fmt.Sprintf("span %s took %s", s.Name(), elapsed))
}

// ForceFlush does nothing.
func (*SpanLogger) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (*SpanLogger) Shutdown(context.Context) error {
	return nil
}
