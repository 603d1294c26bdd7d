package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/tldr/internal/core/ports"
)

var (
	_ sdktrace.SpanProcessor = (*Recorder)(nil)
	_ ports.RenderObserver   = (*Recorder)(nil)
)

// Recorder implements sdktrace.SpanProcessor, summarizing ended render spans.
type Recorder struct {
	mu      sync.Mutex
	summary ports.RenderSummary
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OnStart does nothing; render spans are counted once they end.
func (r *Recorder) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd counts a finished render span. Failed renders add no converter time.
func (r *Recorder) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() || s.Name() != ports.SpanRender {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s.Status().Code == codes.Error {
		r.summary.Failures++
		return
	}
	r.summary.Renders++
	r.summary.Elapsed += s.EndTime().Sub(s.StartTime())
}

// RenderSummary returns the totals recorded so far.
func (r *Recorder) RenderSummary() ports.RenderSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.summary
}

// ForceFlush does nothing.
func (r *Recorder) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}
