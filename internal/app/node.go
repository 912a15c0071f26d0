package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.cachet.dev/cachet/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.cachet.dev/cachet/internal/adapters/ecosystem" //nolint:depguard // Wired in app layer
	"go.cachet.dev/cachet/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.cachet.dev/cachet/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.cachet.dev/cachet/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.cachet.dev/cachet/internal/core/ports"
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
			ecosystem.NodeID,
			fs.DiscovererNodeID,
			fs.HasherNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			aggregator, err := graft.Dep[*ecosystem.Aggregator](ctx)
			if err != nil {
				return nil, err
			}

			discoverer, err := graft.Dep[*fs.Discoverer](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[*fs.ContentHasher](ctx)
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

			return New(loader, aggregator, discoverer, hasher, log, tracer), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
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

	return NewComponents(app, log, tracer), nil
}
