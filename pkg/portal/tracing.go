package portal

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/tunepath-askeva/eram/metal/env"
)

const serviceNamespace = "eram"

// TracerProvider owns the SDK provider when tracing is enabled. A disabled
// provider is a valid value whose Shutdown does nothing.
type TracerProvider struct {
	Provider *sdktrace.TracerProvider
}

// NewTracerProvider exports API request spans over OTLP/HTTP and installs the
// provider globally, so every Tracer handed out earlier starts recording.
func NewTracerProvider(environment *env.Environment) (*TracerProvider, error) {
	if !environment.Tracing.Enabled {
		return &TracerProvider{}, nil
	}

	opts, err := exporterOptions(environment.Tracing.Endpoint)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("tracing: create exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		attribute.String("service.name", environment.App.Name),
		attribute.String("service.namespace", serviceNamespace),
		attribute.String("deployment.environment", environment.App.Type),
	))

	if err != nil {
		return nil, fmt.Errorf("tracing: create resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(environment.Tracing.SampleRatio))),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	slog.Info("tracing enabled", "endpoint", environment.Tracing.Endpoint, "sample_ratio", environment.Tracing.SampleRatio)

	return &TracerProvider{Provider: provider}, nil
}

// Shutdown flushes pending spans.
func (tp *TracerProvider) Shutdown(ctx context.Context) error {
	if tp == nil || tp.Provider == nil {
		return nil
	}

	if err := tp.Provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("tracing: shutdown: %w", err)
	}

	return nil
}

// Tracer returns the named tracer from the global provider, which is a no-op
// until NewTracerProvider installs a real one.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// exporterOptions maps the collector URL onto exporter options. Plain http
// endpoints are dialled without TLS.
func exporterOptions(endpoint string) ([]otlptracehttp.Option, error) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("tracing: invalid endpoint %q", endpoint)
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(u.Host)}

	if u.Scheme == "http" {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	if u.Path != "" && u.Path != "/" {
		opts = append(opts, otlptracehttp.WithURLPath(u.Path))
	}

	return opts, nil
}
