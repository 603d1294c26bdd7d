package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tldr/internal/core/ports"
)

// HasherNodeID is the graft node ID for the cache key hasher.
const HasherNodeID graft.ID = "adapter.fs.hasher"

func init() {
	graft.Register(graft.Node[ports.KeyHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.KeyHasher, error) {
			return NewKeyHasher(), nil
		},
	})
}
