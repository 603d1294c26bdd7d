package tldraw

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tldr/internal/adapters/logger"
	"go.trai.ch/tldr/internal/core/domain"
	"go.trai.ch/tldr/internal/core/ports"
)

// NodeID is the graft node ID for the converter.
const NodeID graft.ID = "adapter.converter"

func init() {
	graft.Register(graft.Node[ports.Converter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Converter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewConverter([]string{domain.DefaultConverterCommand}, log), nil
		},
	})
}
