package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/replica/internal/adapters/config"
	"go.trai.ch/replica/internal/adapters/daemon"
	"go.trai.ch/replica/internal/adapters/telemetry"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/engine/assetcache"
	"go.trai.ch/replica/internal/engine/assetfetch"
	"go.trai.ch/replica/internal/engine/snapshot"
	"go.trai.ch/replica/internal/engine/workspace"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ServeOptions configures the worker daemon.
type ServeOptions struct {
	Tuning domain.Tuning
	// MetricsAddr exposes Prometheus metrics when non-empty.
	MetricsAddr string
	// Trace exports every span as JSON to TraceOutput.
	Trace       bool
	TraceOutput io.Writer
}

// Serve runs the worker daemon for the workspace at root until it is stopped,
// goes idle or ctx is done.
func (a *App) Serve(ctx context.Context, root string, opts ServeOptions) error {
	if err := config.ValidateTuning(opts.Tuning); err != nil {
		return err
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve workspace root")
	}

	var traceOut io.Writer
	if opts.Trace {
		traceOut = opts.TraceOutput
		if traceOut == nil {
			traceOut = os.Stderr
		}
	}
	shutdownTracing, err := telemetry.Setup(traceOut, a.logger)
	if err != nil {
		return err
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	t := opts.Tuning
	remote := daemon.NewRemoteSource(a.logger)
	defer func() { _ = remote.Close() }()

	cache := assetcache.New(t.CleanupInterval, t.Retention, a.logger, a.metrics)
	fetcher := assetfetch.New(cache, remote, a.codec, a.tracer, a.metrics, t)
	builder := snapshot.New(fetcher, a.tracer, a.logger, a.metrics, t)
	coordinator := workspace.New(builder, a.logger, a.metrics)
	defer coordinator.Close()

	server := daemon.NewServer(daemon.NewLifecycle(t.IdleTimeout), coordinator, remote, a.logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		a.logger.Info(fmt.Sprintf("worker serving %s (pid %d)", root, os.Getpid()))
		err := server.Serve(ctx, root)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		cache.Run(ctx, coordinator)
		return nil
	})
	if opts.MetricsAddr != "" {
		g.Go(func() error {
			a.logger.Info(fmt.Sprintf("metrics on http://%s/metrics", opts.MetricsAddr))
			return a.metrics.Serve(ctx, opts.MetricsAddr)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	a.logger.Info("worker stopped")
	return nil
}
