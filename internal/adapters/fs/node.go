package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.cachet.dev/cachet/internal/adapters/logger"
	"go.cachet.dev/cachet/internal/core/ports"
)

const (
	// HasherNodeID is the unique identifier for the content hasher Graft node.
	HasherNodeID graft.ID = "adapter.content_hasher"
	// DiscovererNodeID is the unique identifier for the manifest discoverer Graft node.
	DiscovererNodeID graft.ID = "adapter.manifest_discoverer"
)

func init() {
	graft.Register(graft.Node[*ContentHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*ContentHasher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewContentHasher(log), nil
		},
	})

	graft.Register(graft.Node[*Discoverer]{
		ID:        DiscovererNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Discoverer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDiscoverer(log), nil
		},
	})
}
