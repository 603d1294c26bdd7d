package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tldr/internal/core/ports"
)

const (
	// NodeID is the graft node ID for the tracer.
	NodeID graft.ID = "adapter.telemetry"
	// ProviderNodeID is the graft node ID for the global tracer provider.
	ProviderNodeID graft.ID = "adapter.telemetry_provider"
)

func init() {
	graft.Register(graft.Node[*Provider]{
		ID:        ProviderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Provider, error) {
			return NewProvider(), nil
		},
	})

	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ProviderNodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			// The provider must be registered before spans are started.
			if _, err := graft.Dep[*Provider](ctx); err != nil {
				return nil, err
			}
			return NewOTelTracer(InstrumentationName), nil
		},
	})
}
