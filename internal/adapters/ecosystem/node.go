package ecosystem

import (
	"context"

	"github.com/grindlemire/graft"
	"go.cachet.dev/cachet/internal/adapters/logger"
	"go.cachet.dev/cachet/internal/adapters/shell"
	"go.cachet.dev/cachet/internal/core/ports"
)

// NodeID is the unique identifier for the path aggregator Graft node.
const NodeID graft.ID = "adapter.path_aggregator"

func init() {
	graft.Register(graft.Node[*Aggregator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Aggregator, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewAggregator(runner, log), nil
		},
	})
}
