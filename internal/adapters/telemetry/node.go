package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	progrockadapter "go.cachet.dev/cachet/internal/adapters/telemetry/progrock"
	"go.cachet.dev/cachet/internal/core/ports"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Tracer, error) {
			// Progress recording is pointless without a terminal attached,
			// which is the common case on CI runners.
			if os.Getenv("CACHET_PROGRESS") != "" {
				return progrockadapter.New(), nil
			}
			return NewNoOpTracer(), nil
		},
	})
}
