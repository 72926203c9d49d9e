package source

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/replica/internal/adapters/codec"
	"go.trai.ch/replica/internal/adapters/logger"
	"go.trai.ch/replica/internal/core/ports"
)

// NodeID is the unique identifier for the asset publisher Graft node.
const NodeID graft.ID = "adapter.source"

func init() {
	graft.Register(graft.Node[ports.AssetPublisher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{codec.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.AssetPublisher, error) {
			c, err := graft.Dep[ports.Codec](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPublisher(c, log), nil
		},
	})
}
