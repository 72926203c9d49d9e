// Package source serves the assets of the client's published solutions to the worker.
package source

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"

	replicav1 "go.trai.ch/replica/api/replica/v1"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultKeep is the number of published solutions whose assets stay available.
// Worker requests for a root published just before the current one must still resolve.
const DefaultKeep = 4

var (
	_ ports.AssetPublisher         = (*Publisher)(nil)
	_ replicav1.AssetServiceServer = (*Publisher)(nil)
)

// index holds the assets of one published solution, whole and per project.
type index struct {
	root      domain.Checksum
	all       map[domain.Checksum]domain.Asset
	byProject map[domain.ProjectID]map[domain.Checksum]domain.Asset
}

func newIndex(s *domain.Solution) *index {
	idx := &index{
		root:      s.Checksum,
		all:       domain.Assets(s),
		byProject: make(map[domain.ProjectID]map[domain.Checksum]domain.Asset, len(s.Projects)),
	}
	for id, p := range s.Projects {
		assets := make(map[domain.Checksum]domain.Asset)
		domain.ProjectAssets(assets, p)
		idx.byProject[id] = assets
	}
	return idx
}

func (idx *index) lookup(scope domain.AssetScope, c domain.Checksum) (domain.Asset, bool) {
	if !scope.IsSolution() {
		if a, ok := idx.byProject[scope.ProjectID][c]; ok {
			return a, true
		}
	}
	a, ok := idx.all[c]
	return a, ok
}

// Publisher implements ports.AssetPublisher on top of the replica AssetService.
type Publisher struct {
	replicav1.UnimplementedAssetServiceServer

	codec  ports.Codec
	logger ports.Logger
	keep   int

	mu sync.RWMutex
	// published is ordered newest first.
	published []*index
}

// NewPublisher creates a publisher that keeps the DefaultKeep most recent solutions.
func NewPublisher(codec ports.Codec, logger ports.Logger) *Publisher {
	return NewPublisherWithKeep(codec, logger, DefaultKeep)
}

// NewPublisherWithKeep creates a publisher that keeps the keep most recent solutions.
func NewPublisherWithKeep(codec ports.Codec, logger ports.Logger, keep int) *Publisher {
	return &Publisher{
		codec:  codec,
		logger: logger,
		keep:   max(keep, 1),
	}
}

// Publish implements ports.AssetPublisher.
func (p *Publisher) Publish(s *domain.Solution) {
	idx := newIndex(s)

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.published) > 0 && p.published[0].root == s.Checksum {
		return
	}
	p.published = append([]*index{idx}, p.published...)
	if len(p.published) > p.keep {
		p.published = p.published[:p.keep]
	}
}

// Lookup finds an asset in the published solutions, newest first.
// The scope is tried before the whole solution.
func (p *Publisher) Lookup(scope domain.AssetScope, c domain.Checksum) (domain.Asset, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, idx := range p.published {
		if a, ok := idx.lookup(scope, c); ok {
			return a, true
		}
	}
	return nil, false
}

// FetchAssets implements replicav1.AssetServiceServer.
func (p *Publisher) FetchAssets(req *replicav1.FetchAssetsRequest, stream grpc.ServerStreamingServer[replicav1.Asset]) error {
	if req.GetSerializer() != p.codec.Name() {
		err := zerr.With(zerr.Wrap(domain.ErrUnknownSerializer, "cannot encode assets"), "serializer", req.GetSerializer())
		return status.Error(codes.InvalidArgument, err.Error())
	}

	scope := domain.AssetScope{ProjectID: domain.ProjectID(req.GetProjectId())}
	missing := 0
	for _, raw := range req.GetChecksums() {
		if err := stream.Context().Err(); err != nil {
			return err
		}

		c := domain.Checksum(raw)
		a, ok := p.Lookup(scope, c)
		if !ok {
			missing++
			continue
		}
		data, err := p.codec.Encode(a)
		if err != nil {
			return status.Error(codes.Internal, err.Error())
		}
		if err := stream.Send(&replicav1.Asset{Checksum: raw, Kind: uint32(a.Kind()), Data: data}); err != nil {
			return err
		}
	}

	if missing > 0 {
		p.logger.Warn(fmt.Sprintf("request %s: %d of %d assets are not published", req.GetRequestId(), missing, len(req.GetChecksums())))
	}
	return nil
}

// Serve implements ports.AssetPublisher.
func (p *Publisher) Serve(ctx context.Context, socketPath string) error {
	if err := os.MkdirAll(filepath.Dir(socketPath), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create state directory")
	}
	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, "failed to remove stale socket"), "path", socketPath)
	}

	lis, err := net.Listen("unix", socketPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to listen on socket"), "path", socketPath)
	}
	defer func() { _ = os.Remove(socketPath) }()
	if err := os.Chmod(socketPath, domain.SocketPerm); err != nil {
		_ = lis.Close()
		return zerr.With(zerr.Wrap(err, "failed to set socket permissions"), "path", socketPath)
	}

	srv := grpc.NewServer()
	replicav1.RegisterAssetServiceServer(srv, p)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		srv.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}
