package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Provider owns the process-wide tracer provider and its render recorder.
type Provider struct {
	recorder *Recorder
	tp       *sdktrace.TracerProvider
}

// NewProvider creates a TracerProvider feeding a fresh Recorder and registers
// it as the global provider, so every OTelTracer reports to it.
func NewProvider() *Provider {
	recorder := NewRecorder()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(recorder),
	)
	otel.SetTracerProvider(tp)

	return &Provider{recorder: recorder, tp: tp}
}

// Recorder returns the render recorder attached to the provider.
func (p *Provider) Recorder() *Recorder {
	return p.recorder
}

// Shutdown ends span processing. Spans started afterwards are dropped.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
