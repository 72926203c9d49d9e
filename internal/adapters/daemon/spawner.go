package daemon

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	pollInterval    = 100 * time.Millisecond
	maxPollDuration = 5 * time.Second
	pingTimeout     = time.Second
)

var _ ports.WorkerConnector = (*Connector)(nil)

// Connector implements ports.WorkerConnector.
type Connector struct {
	executablePath string
}

// NewConnector creates a connector that spawns the running executable as the worker.
func NewConnector() (*Connector, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine executable path")
	}
	return NewConnectorWithExecutable(exe), nil
}

// NewConnectorWithExecutable creates a connector that spawns exe as the worker.
func NewConnectorWithExecutable(exe string) *Connector {
	return &Connector{executablePath: exe}
}

// Connect returns a client, spawning the worker if necessary.
func (c *Connector) Connect(ctx context.Context, root string) (ports.WorkerClient, error) {
	if c.isRunningWithCtx(ctx, root) {
		return Dial(root)
	}

	if err := c.Spawn(ctx, root); err != nil {
		return nil, err
	}

	client, err := Dial(root)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, zerr.With(zerr.Wrap(domain.ErrDaemonUnavailable, "worker started but is not responsive"), "root", root)
	}
	return client, nil
}

// Dial returns a client to the worker for root without spawning it.
func (c *Connector) Dial(root string) (ports.WorkerClient, error) {
	return Dial(root)
}

// IsRunning checks if the worker is running and responsive.
func (c *Connector) IsRunning(root string) bool {
	if root == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	return c.isRunningWithCtx(ctx, root)
}

func (c *Connector) isRunningWithCtx(ctx context.Context, root string) bool {
	client, err := Dial(root)
	if err != nil {
		return false
	}
	defer func() { _ = client.Close() }()

	return client.Ping(ctx) == nil
}

// Spawn starts the worker process for root in the background and waits until it answers.
func (c *Connector) Spawn(ctx context.Context, root string) error {
	if root == "" {
		return zerr.New("root cannot be empty")
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve absolute root path")
	}

	if mkdirErr := os.MkdirAll(domain.StatePath(absRoot), domain.DirPerm); mkdirErr != nil {
		return zerr.Wrap(mkdirErr, "failed to create state directory")
	}

	logPath := domain.WorkerLogPath(absRoot)
	//nolint:gosec // G304: logPath is from root + domain constant, not user input
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.PrivateFilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open worker log"), "path", logPath)
	}

	//nolint:gosec // G204: executablePath is controlled, args are fixed literals
	cmd := exec.Command(c.executablePath, "serve")
	cmd.Dir = absRoot
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	if err := cmd.Start(); err != nil {
		_ = logFile.Close()
		return zerr.With(zerr.Wrap(domain.ErrDaemonSpawnFailed, err.Error()), "executable", c.executablePath)
	}

	go func() {
		_ = cmd.Wait()
		_ = logFile.Close()
	}()

	return c.waitForStartup(ctx, absRoot)
}

// waitForStartup polls the worker until it answers a ping.
func (c *Connector) waitForStartup(ctx context.Context, root string) error {
	pollCtx, cancel := context.WithTimeout(ctx, maxPollDuration)
	defer cancel()

	err := backoff.Retry(func() error {
		if c.isRunningWithCtx(pollCtx, root) {
			return nil
		}
		return domain.ErrDaemonUnavailable
	}, backoff.WithContext(backoff.NewConstantBackOff(pollInterval), pollCtx))
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return zerr.With(zerr.Wrap(domain.ErrDaemonUnavailable, "worker failed to start within timeout"), "root", root)
}
