// Package daemon implements the worker daemon and the client's connection to it.
// Both sides speak gRPC over Unix domain sockets inside the workspace state directory.
package daemon

import (
	"context"
	"path/filepath"
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
	callRetries      = 4
	callRetryInitial = 100 * time.Millisecond
)

var _ ports.WorkerClient = (*Client)(nil)

// Client implements ports.WorkerClient.
type Client struct {
	conn   *grpc.ClientConn
	client replicav1.WorkspaceServiceClient
}

// Dial connects to the worker of the workspace at root.
// grpc.NewClient returns immediately; the connection is made on the first call.
func Dial(root string) (*Client, error) {
	return DialSocket(domain.WorkerSocketPath(root))
}

// DialSocket connects to a worker listening on socketPath.
func DialSocket(socketPath string) (*Client, error) {
	socketPath, err := filepath.Abs(socketPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve socket path")
	}
	conn, err := grpc.NewClient("unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "worker client creation failed"), "socket", socketPath)
	}
	return &Client{
		conn:   conn,
		client: replicav1.NewWorkspaceServiceClient(conn),
	}, nil
}

// retry runs call again while the worker is unavailable.
func retry(ctx context.Context, call func() error) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(backoff.WithInitialInterval(callRetryInitial)), callRetries),
		ctx,
	)
	return backoff.Retry(func() error {
		err := call()
		if err == nil || status.Code(err) == codes.Unavailable {
			return err
		}
		return backoff.Permanent(err)
	}, policy)
}

// Attach implements ports.WorkerClient.
func (c *Client) Attach(ctx context.Context, endpoint string) error {
	return retry(ctx, func() error {
		_, err := c.client.Attach(ctx, &replicav1.AttachRequest{Endpoint: endpoint})
		return err
	})
}

// SynchronizePrimary implements ports.WorkerClient.
func (c *Client) SynchronizePrimary(ctx context.Context, root domain.Checksum, version int64) error {
	return retry(ctx, func() error {
		_, err := c.client.SynchronizePrimary(ctx, &replicav1.SynchronizePrimaryRequest{
			Root:    uint64(root),
			Version: version,
		})
		return err
	})
}

// Describe implements ports.WorkerClient.
func (c *Client) Describe(ctx context.Context, root domain.Checksum) (*ports.SnapshotSummary, error) {
	resp, err := c.client.Describe(ctx, &replicav1.DescribeRequest{Root: uint64(root)})
	if err != nil {
		return nil, err
	}
	return summaryFromResponse(resp), nil
}

// Ping implements ports.WorkerClient.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.client.Ping(ctx, &replicav1.PingRequest{})
	return err
}

// Status implements ports.WorkerClient.
func (c *Client) Status(ctx context.Context) (*ports.DaemonStatus, error) {
	resp, err := c.client.Status(ctx, &replicav1.StatusRequest{})
	if err != nil {
		return nil, err
	}
	return &ports.DaemonStatus{
		Running:        resp.GetRunning(),
		PID:            int(resp.GetPid()),
		Uptime:         time.Duration(resp.GetUptimeSeconds()) * time.Second,
		LastActivity:   time.Unix(resp.GetLastActivityUnix(), 0),
		IdleRemaining:  time.Duration(resp.GetIdleRemainingSeconds()) * time.Second,
		Records:        int(resp.GetRecords()),
		Primary:        domain.Checksum(resp.GetPrimary()),
		AppliedVersion: resp.GetAppliedVersion(),
	}, nil
}

// Shutdown implements ports.WorkerClient.
func (c *Client) Shutdown(ctx context.Context) error {
	_, err := c.client.Shutdown(ctx, &replicav1.ShutdownRequest{Graceful: true})
	return err
}

// Close implements ports.WorkerClient.
func (c *Client) Close() error {
	return c.conn.Close()
}
