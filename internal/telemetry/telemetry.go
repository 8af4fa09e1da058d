// Package telemetry wires the OpenTelemetry global providers. Every
// package calls telemetry.Tracer/telemetry.Meter at init time against
// the global delegating provider, which is a no-op until Init runs —
// so instruments always exist, whether or not the CLI turns on export.
package telemetry

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Shutdown flushes and stops the providers installed by Init.
type Shutdown func(context.Context) error

// Init installs stdout-exporting tracer and meter providers as the
// global OTel providers, writing spans and metrics to w. Passing a
// nil w installs nothing and returns a Shutdown that does nothing;
// whatever global providers are already installed stay in place.
func Init(w io.Writer) (Shutdown, error) {
	if w == nil {
		return func(context.Context) error { return nil }, nil
	}

	traceExporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("telemetry: building trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(traceExporter))
	otel.SetTracerProvider(tp)

	metricExporter, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("telemetry: building metric exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)))
	otel.SetMeterProvider(mp)

	return func(ctx context.Context) error {
		if err := tp.Shutdown(ctx); err != nil {
			return fmt.Errorf("telemetry: shutting down tracer provider: %w", err)
		}
		if err := mp.Shutdown(ctx); err != nil {
			return fmt.Errorf("telemetry: shutting down meter provider: %w", err)
		}
		return nil
	}, nil
}

// Tracer returns a tracer from the current global provider.
func Tracer(name string) trace.Tracer { return otel.Tracer(name) }

// Meter returns a meter from the current global provider.
func Meter(name string) metric.Meter { return otel.Meter(name) }
