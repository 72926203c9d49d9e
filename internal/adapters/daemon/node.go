package daemon

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/replica/internal/core/ports"
)

// NodeID is the unique identifier for the worker connector Graft node.
const NodeID graft.ID = "adapter.daemon"

func init() {
	graft.Register(graft.Node[ports.WorkerConnector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WorkerConnector, error) {
			return NewConnector()
		},
	})
}
