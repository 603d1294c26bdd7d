package esbuild

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the asset emitter Graft node.
const NodeID graft.ID = "adapter.asset_emitter"

func init() {
	graft.Register(graft.Node[*Emitter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Emitter, error) {
			return NewEmitter(), nil
		},
	})
}
