package telemetry

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/replica/internal/core/ports"
	"go.trai.ch/zerr"
)

// Setup installs the global tracer provider.
// Ended spans are logged at debug level; when w is non-nil they are also exported to it as JSON.
// The returned function flushes and stops the provider.
func Setup(w io.Writer, logger ports.Logger) (func(context.Context) error, error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSpanProcessor(NewSpanLogger(logger)),
	}

	if w != nil {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, zerr.Wrap(err, "failed to create trace exporter")
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
