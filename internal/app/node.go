package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/replica/internal/adapters/codec"     //nolint:depguard // Wired in app layer
	"go.trai.ch/replica/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/replica/internal/adapters/daemon"    //nolint:depguard // Wired in app layer
	"go.trai.ch/replica/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/replica/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/replica/internal/adapters/source"    //nolint:depguard // Wired in app layer
	"go.trai.ch/replica/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/replica/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/replica/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			daemon.NodeID,
			source.NodeID,
			watcher.NodeID,
			codec.NodeID,
			telemetry.NodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.SolutionLoader](ctx)
	if err != nil {
		return nil, err
	}
	connector, err := graft.Dep[ports.WorkerConnector](ctx)
	if err != nil {
		return nil, err
	}
	publisher, err := graft.Dep[ports.AssetPublisher](ctx)
	if err != nil {
		return nil, err
	}
	fileWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	c, err := graft.Dep[ports.Codec](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	prom, err := graft.Dep[*metrics.Prometheus](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, connector, publisher, fileWatcher, c, tracer, prom, log), nil
}
