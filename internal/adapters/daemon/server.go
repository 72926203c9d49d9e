package daemon

import (
	"context"
	"math"
	"net"
	"os"
	"path/filepath"
	"strconv"

	replicav1 "go.trai.ch/replica/api/replica/v1"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
)

// Attacher points the worker at a client's asset server.
type Attacher interface {
	Attach(endpoint string) error
}

var _ replicav1.WorkspaceServiceServer = (*Server)(nil)

// Server is the worker daemon. It serves WorkspaceService on the workspace socket.
type Server struct {
	replicav1.UnimplementedWorkspaceServiceServer

	lifecycle  *Lifecycle
	workspace  ports.Workspace
	attacher   Attacher
	logger     ports.Logger
	grpcServer *grpc.Server
}

// NewServer creates a worker server answering from workspace.
func NewServer(lifecycle *Lifecycle, workspace ports.Workspace, attacher Attacher, logger ports.Logger) *Server {
	s := &Server{
		lifecycle: lifecycle,
		workspace: workspace,
		attacher:  attacher,
		logger:    logger,
		grpcServer: grpc.NewServer(
			grpc.ChainUnaryInterceptor(lifecycle.UnaryInterceptor()),
		),
	}
	replicav1.RegisterWorkspaceServiceServer(s.grpcServer, s)
	return s
}

// Serve listens on the worker socket of root until ctx is done or shutdown is requested.
func (s *Server) Serve(ctx context.Context, root string) error {
	socketPath := domain.WorkerSocketPath(root)
	lis, err := listenUnix(socketPath)
	if err != nil {
		return err
	}

	pidPath := domain.WorkerPIDPath(root)
	if err := os.WriteFile(pidPath, []byte(strconv.Itoa(os.Getpid())), domain.PrivateFilePerm); err != nil {
		_ = lis.Close()
		return zerr.With(zerr.Wrap(err, "failed to write pid file"), "path", pidPath)
	}
	defer func() {
		_ = os.Remove(socketPath)
		_ = os.Remove(pidPath)
	}()

	s.logger.Info("worker listening on " + socketPath)
	return serveUntil(ctx, s.grpcServer, lis, s.lifecycle.ShutdownChan())
}

// listenUnix replaces any stale socket at path and restricts it to the owner.
func listenUnix(path string) (net.Listener, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create state directory"), "path", dir)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, zerr.With(zerr.Wrap(err, "failed to remove stale socket"), "path", path)
	}

	lis, err := net.Listen("unix", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to listen on socket"), "path", path)
	}
	if err := os.Chmod(path, domain.SocketPerm); err != nil {
		_ = lis.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to set socket permissions"), "path", path)
	}
	return lis, nil
}

// serveUntil runs srv on lis and stops it gracefully when ctx is done or stop closes.
func serveUntil(ctx context.Context, srv *grpc.Server, lis net.Listener, stop <-chan struct{}) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		srv.GracefulStop()
		return ctx.Err()
	case <-stop:
		srv.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

// Attach implements WorkspaceService.Attach.
func (s *Server) Attach(_ context.Context, req *replicav1.AttachRequest) (*replicav1.AttachResponse, error) {
	if err := s.attacher.Attach(req.GetEndpoint()); err != nil {
		return nil, err
	}
	return &replicav1.AttachResponse{}, nil
}

// SynchronizePrimary implements WorkspaceService.SynchronizePrimary.
func (s *Server) SynchronizePrimary(
	ctx context.Context, req *replicav1.SynchronizePrimaryRequest,
) (*replicav1.SynchronizePrimaryResponse, error) {
	if err := s.workspace.SynchronizePrimary(ctx, domain.Checksum(req.GetRoot()), req.GetVersion()); err != nil {
		return nil, err
	}
	return &replicav1.SynchronizePrimaryResponse{}, nil
}

// Describe implements WorkspaceService.Describe.
func (s *Server) Describe(ctx context.Context, req *replicav1.DescribeRequest) (*replicav1.DescribeResponse, error) {
	var resp *replicav1.DescribeResponse
	err := s.workspace.RunWithSnapshot(ctx, domain.Checksum(req.GetRoot()), func(_ context.Context, sol *domain.Solution) error {
		resp = summaryToResponse(Summarize(sol))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Ping implements WorkspaceService.Ping.
func (s *Server) Ping(_ context.Context, _ *replicav1.PingRequest) (*replicav1.PingResponse, error) {
	return &replicav1.PingResponse{
		IdleRemainingSeconds: int64(s.lifecycle.IdleRemaining().Seconds()),
	}, nil
}

// Status implements WorkspaceService.Status.
func (s *Server) Status(_ context.Context, _ *replicav1.StatusRequest) (*replicav1.StatusResponse, error) {
	stats := s.workspace.Stats()
	pid := min(os.Getpid(), math.MaxInt32)
	return &replicav1.StatusResponse{
		Running: true,
		//nolint:gosec // G115: pid is capped to MaxInt32 above
		Pid:                  int32(pid),
		UptimeSeconds:        int64(s.lifecycle.Uptime().Seconds()),
		LastActivityUnix:     s.lifecycle.LastActivity().Unix(),
		IdleRemainingSeconds: int64(s.lifecycle.IdleRemaining().Seconds()),
		Records:              int64(stats.Records),
		Primary:              uint64(stats.Primary),
		AppliedVersion:       stats.AppliedVersion,
	}, nil
}

// Shutdown implements WorkspaceService.Shutdown.
func (s *Server) Shutdown(_ context.Context, _ *replicav1.ShutdownRequest) (*replicav1.ShutdownResponse, error) {
	s.logger.Info("shutdown requested")
	s.lifecycle.Shutdown()
	return &replicav1.ShutdownResponse{Success: true}, nil
}
