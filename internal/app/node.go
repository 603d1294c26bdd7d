package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tldr/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/tldr/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/tldr/internal/adapters/esbuild"   //nolint:depguard // Wired in app layer
	"go.trai.ch/tldr/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/tldr/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/tldr/internal/adapters/probe"     //nolint:depguard // Wired in app layer
	"go.trai.ch/tldr/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/tldr/internal/adapters/tldraw"    //nolint:depguard // Wired in app layer
	"go.trai.ch/tldr/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			tldraw.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			probe.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			telemetry.ProviderNodeID,
			esbuild.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.ProviderNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			provider, err := graft.Dep[*telemetry.Provider](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log, Shutdown: provider.Shutdown}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	converter, err := graft.Dep[ports.Converter](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.KeyHasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ArtifactStore](ctx)
	if err != nil {
		return nil, err
	}

	prober, err := graft.Dep[ports.ImageProber](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	emitter, err := graft.Dep[*esbuild.Emitter](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[*telemetry.Provider](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, converter, hasher, store, prober, log, tracer, emitter).
		WithRenderObserver(provider.Recorder()), nil
}
