package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// TracerName names the tracer used by generator and repair spans.
const TracerName = "github.com/katalvlaran/onestroke"

// Span attribute keys.
const (
	AttrLevelID    = "level.id"
	AttrDifficulty = "level.difficulty"
	AttrAttempts   = "attempts"
	AttrPattern    = "pattern"
)

// TracingConfig configures InitTracing.
type TracingConfig struct {
	// ServiceName defaults to "onestroke".
	ServiceName string

	// Endpoint is the OTLP gRPC endpoint (e.g. "localhost:4317").
	// Empty disables export.
	Endpoint string

	// SampleRate in [0, 1]; values >= 1 sample everything.
	SampleRate float64
}

// DefaultTracingConfig returns a disabled configuration.
func DefaultTracingConfig() *TracingConfig {
	return &TracingConfig{ServiceName: "onestroke", SampleRate: 1.0}
}

// TracerProvider wraps the sdk provider; provider is nil when export is off.
type TracerProvider struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// InitTracing installs a global tracer provider exporting over OTLP gRPC.
// Without an endpoint it returns the global (no-op by default) tracer.
func InitTracing(ctx context.Context, cfg *TracingConfig) (*TracerProvider, error) {
	if cfg == nil {
		cfg = DefaultTracingConfig()
	}
	if cfg.Endpoint == "" {
		return &TracerProvider{tracer: otel.Tracer(TracerName)}, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("observability: create OTLP exporter: %w", err)
	}

	name := cfg.ServiceName
	if name == "" {
		name = "onestroke"
	}
	res := resource.NewSchemaless(attribute.String("service.name", name))

	var sampler sdktrace.Sampler
	switch {
	case cfg.SampleRate >= 1.0:
		sampler = sdktrace.AlwaysSample()
	case cfg.SampleRate <= 0:
		sampler = sdktrace.NeverSample()
	default:
		sampler = sdktrace.TraceIDRatioBased(cfg.SampleRate)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)
	otel.SetTracerProvider(provider)

	return &TracerProvider{provider: provider, tracer: provider.Tracer(TracerName)}, nil
}

// Tracer returns the tracer for onestroke spans.
func (tp *TracerProvider) Tracer() trace.Tracer { return tp.tracer }

// Shutdown flushes and stops the exporter, if any.
func (tp *TracerProvider) Shutdown(ctx context.Context) error {
	if tp.provider != nil {
		return tp.provider.Shutdown(ctx)
	}
	return nil
}

// Tracer returns the global onestroke tracer.
func Tracer() trace.Tracer { return otel.Tracer(TracerName) }

// StartLevelSpan starts an internal span for work on one level.
func StartLevelSpan(ctx context.Context, tr trace.Tracer, name string, id, difficulty int) (context.Context, trace.Span) {
	if tr == nil {
		tr = Tracer()
	}
	return tr.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.Int(AttrLevelID, id),
			attribute.Int(AttrDifficulty, difficulty),
		),
	)
}

// RecordError marks span failed with err; nil is ignored.
func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
