package daemon

import (
	"context"
	"errors"
	"io"
	"math"
	"path/filepath"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	replicav1 "go.trai.ch/replica/api/replica/v1"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const (
	fetchRetries      = 3
	fetchRetryInitial = 50 * time.Millisecond
)

var _ ports.AssetSource = (*RemoteSource)(nil)

// RemoteSource fetches assets from the asset server of the attached client.
// A failed stream is retried from the start while the transport is unavailable;
// assets received twice are ignored by the fetcher.
type RemoteSource struct {
	mu       sync.RWMutex
	endpoint string
	conn     *grpc.ClientConn
	client   replicav1.AssetServiceClient
	logger   ports.Logger
}

// NewRemoteSource creates a source with no client attached.
func NewRemoteSource(logger ports.Logger) *RemoteSource {
	return &RemoteSource{logger: logger}
}

// Attach points the source at the asset server listening on endpoint.
// The previous connection, if any, is closed.
func (r *RemoteSource) Attach(endpoint string) error {
	if !filepath.IsAbs(endpoint) {
		return zerr.With(zerr.New("asset endpoint must be an absolute socket path"), "endpoint", endpoint)
	}
	conn, err := grpc.NewClient("unix://"+endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "asset client creation failed"), "endpoint", endpoint)
	}

	r.mu.Lock()
	old := r.conn
	r.endpoint = endpoint
	r.conn = conn
	r.client = replicav1.NewAssetServiceClient(conn)
	r.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	r.logger.Info("attached to asset server " + endpoint)
	return nil
}

// Endpoint returns the attached endpoint, or "" when detached.
func (r *RemoteSource) Endpoint() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.endpoint
}

// FetchAssets implements ports.AssetSource.
func (r *RemoteSource) FetchAssets(ctx context.Context, req ports.FetchRequest, yield func(ports.AssetPayload) error) error {
	r.mu.RLock()
	client := r.client
	r.mu.RUnlock()
	if client == nil {
		return domain.ErrNoAssetSource
	}

	in := &replicav1.FetchAssetsRequest{
		RequestId:  req.RequestID,
		ProjectId:  string(req.Scope.ProjectID),
		Serializer: req.Serializer,
		Checksums:  make([]uint64, len(req.Checksums)),
	}
	for i, c := range req.Checksums {
		in.Checksums[i] = uint64(c)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(backoff.WithInitialInterval(fetchRetryInitial)), fetchRetries),
		ctx,
	)
	return backoff.RetryNotify(func() error {
		err := stream(ctx, client, in, yield)
		if err == nil || status.Code(err) == codes.Unavailable {
			return err
		}
		return backoff.Permanent(err)
	}, policy, func(err error, next time.Duration) {
		r.logger.Warn("asset fetch " + req.RequestID + " failed, retrying in " + next.String() + ": " + err.Error())
	})
}

func stream(
	ctx context.Context,
	client replicav1.AssetServiceClient,
	in *replicav1.FetchAssetsRequest,
	yield func(ports.AssetPayload) error,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s, err := client.FetchAssets(ctx, in)
	if err != nil {
		return err
	}
	for {
		m, err := s.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return err
		}
		if err := yield(ports.AssetPayload{
			Checksum: domain.Checksum(m.GetChecksum()),
			Kind:     assetKind(m.GetKind()),
			Data:     m.GetData(),
		}); err != nil {
			return err
		}
	}
}

// assetKind maps a wire kind onto domain.AssetKind. Values that do not fit are
// reported as KindUnknown so the fetcher rejects them.
func assetKind(k uint32) domain.AssetKind {
	if k > math.MaxUint8 {
		return domain.KindUnknown
	}
	return domain.AssetKind(k)
}

// Close releases the connection to the attached client.
func (r *RemoteSource) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn == nil {
		return nil
	}
	err := r.conn.Close()
	r.conn = nil
	r.client = nil
	r.endpoint = ""
	return err
}
