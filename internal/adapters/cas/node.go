package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tldr/internal/core/ports"
)

// NodeID is the graft node ID for the artifact store.
const NodeID graft.ID = "adapter.artifact_store"

func init() {
	graft.Register(graft.Node[ports.ArtifactStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactStore, error) {
			return NewStore(), nil
		},
	})
}
