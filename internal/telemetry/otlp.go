// Package telemetry wires OpenTelemetry tracing for the API client.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ShutdownFunc flushes pending spans and releases the exporter.
type ShutdownFunc func(context.Context) error

func noop(context.Context) error { return nil }

// ShutdownLogged runs f and logs a failure instead of returning it.
// Meant for a deferred call on exit.
func (f ShutdownFunc) ShutdownLogged(ctx context.Context, logger *slog.Logger) {
	if err := f(ctx); err != nil {
		logger.Error("telemetry shutdown", "error", err)
	}
}

// Setup installs a global tracer provider exporting over OTLP/HTTP to
// endpoint (a full URL such as http://localhost:4318).
// Tracing is opt-in: with an empty endpoint nothing is registered and the
// returned shutdown is a no-op.
func Setup(ctx context.Context, endpoint, serviceName string) (ShutdownFunc, error) {
	if endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return noop, fmt.Errorf("otlp exporter: %w", err)
	}

	if serviceName == "" {
		serviceName = "bookreview"
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noop, fmt.Errorf("otel resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return provider.Shutdown, nil
}
