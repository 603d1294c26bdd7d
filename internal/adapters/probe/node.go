package probe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tldr/internal/core/ports"
)

// NodeID is the graft node ID for the image prober.
const NodeID graft.ID = "adapter.image_prober"

func init() {
	graft.Register(graft.Node[ports.ImageProber]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImageProber, error) {
			return NewProber(), nil
		},
	})
}
