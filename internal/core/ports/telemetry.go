package ports

import (
	"context"
	"time"
)

// Span names shared by the engine and the trace consumers.
const (
	SpanTransform = "transform"
	SpanRender    = "render"
)

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// Attributes are set on the span when it starts.
	Attributes map[string]any
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithAttribute sets an attribute when the span starts.
func WithAttribute(key string, value any) SpanOption {
	return func(c *SpanConfig) {
		if c.Attributes == nil {
			c.Attributes = make(map[string]any)
		}
		c.Attributes[key] = value
	}
}

// RenderSummary aggregates the converter runs observed during one command.
type RenderSummary struct {
	Renders  int
	Failures int
	// Elapsed is the summed converter time, which exceeds wall time when
	// renders run concurrently.
	Elapsed time.Duration
}

// Since returns the runs recorded after earlier was taken.
func (s RenderSummary) Since(earlier RenderSummary) RenderSummary {
	return RenderSummary{
		Renders:  s.Renders - earlier.Renders,
		Failures: s.Failures - earlier.Failures,
		Elapsed:  s.Elapsed - earlier.Elapsed,
	}
}

// RenderObserver reports the converter runs seen so far.
type RenderObserver interface {
	RenderSummary() RenderSummary
}
