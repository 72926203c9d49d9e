package codec

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/replica/internal/core/ports"
)

// NodeID is the unique identifier for the asset codec Graft node.
const NodeID graft.ID = "adapter.codec"

func init() {
	graft.Register(graft.Node[ports.Codec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Codec, error) {
			return New()
		},
	})
}
