package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.trai.ch/replica/internal/adapters/config"
	"go.trai.ch/replica/internal/adapters/watcher"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	socketPollInterval = 20 * time.Millisecond
	socketWaitTimeout  = 2 * time.Second
)

// PublishOptions configures Publish.
type PublishOptions struct {
	// Once publishes the current state and returns instead of watching for changes.
	Once bool
}

// Publish loads the workspace at root, announces it to the worker as the primary
// snapshot and keeps serving its assets. Unless opts.Once is set, every change
// below root is published as a new primary snapshot.
func (a *App) Publish(ctx context.Context, root string, opts PublishOptions) error {
	root, err := filepath.Abs(root)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve workspace root")
	}
	sol, err := a.loader.Load(ctx, root)
	if err != nil {
		return err
	}

	return a.withWorker(ctx, root, func(ctx context.Context, client ports.WorkerClient) error {
		s := &session{app: a, root: root, client: client}
		if err := s.announce(ctx, sol); err != nil {
			return err
		}
		if opts.Once {
			return nil
		}
		return a.watch(ctx, s)
	})
}

// withWorker connects to the worker, serves published assets on the workspace
// asset socket and attaches the worker to it before running fn.
func (a *App) withWorker(ctx context.Context, root string, fn func(context.Context, ports.WorkerClient) error) error {
	client, err := a.connector.Connect(ctx, root)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	socket := domain.AssetSocketPath(root)
	g.Go(func() error {
		return a.publisher.Serve(ctx, socket)
	})
	g.Go(func() error {
		defer cancel()
		if err := waitForSocket(ctx, socket); err != nil {
			return err
		}
		if err := client.Attach(ctx, socket); err != nil {
			return err
		}
		return fn(ctx, client)
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func waitForSocket(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, socketWaitTimeout)
	defer cancel()

	b := backoff.WithContext(backoff.NewConstantBackOff(socketPollInterval), ctx)
	err := backoff.Retry(func() error {
		_, err := os.Stat(path)
		return err
	}, b)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "asset socket did not come up"), "path", path)
	}
	return nil
}

// watch publishes debounced batches of changes until ctx is done.
func (a *App) watch(ctx context.Context, s *session) error {
	if err := a.watcher.Start(ctx, s.root); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	d := watcher.NewDebouncer(a.debounce, func(paths []string) {
		if ctx.Err() != nil {
			return
		}
		if err := s.update(ctx, paths); err != nil {
			a.logger.Error(err)
		}
	})

	a.logger.Info(fmt.Sprintf("watching %s for changes", s.root))
	for ev := range a.watcher.Events() {
		d.Add(ev.Path)
	}
	return ctx.Err()
}

// session tracks the primary snapshot announced by one Publish call.
// Its methods are called from one goroutine at a time.
type session struct {
	app     *App
	root    string
	client  ports.WorkerClient
	current *domain.Solution
	version int64
}

// announce publishes sol and makes it the worker's primary snapshot. Versions
// are derived from the wall clock so that they keep increasing across restarts
// of the publishing process.
func (s *session) announce(ctx context.Context, sol *domain.Solution) error {
	s.app.publisher.Publish(sol)
	s.version = max(s.version+1, time.Now().UnixNano())
	if err := s.client.SynchronizePrimary(ctx, sol.Checksum, s.version); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to announce primary snapshot"), "solution", sol.Checksum.String())
	}
	s.current = sol
	s.app.logger.Info(fmt.Sprintf("published %s (%d projects, %d documents)",
		sol.Checksum, len(sol.Projects), sol.DocumentCount()))
	return nil
}

func (s *session) update(ctx context.Context, paths []string) error {
	next, err := s.apply(ctx, paths)
	if err != nil {
		return err
	}
	if next.Checksum == s.current.Checksum {
		s.app.logger.Debug(fmt.Sprintf("%d changed paths leave %s unchanged", len(paths), next.Checksum))
		return nil
	}
	return s.announce(ctx, next)
}

// apply derives the next snapshot. Edits to known documents only replace their
// text; anything else reloads the whole workspace.
func (s *session) apply(ctx context.Context, paths []string) (*domain.Solution, error) {
	next := s.current
	for _, path := range paths {
		id, err := config.DocumentIDFor(s.root, path)
		if err != nil {
			return s.app.loader.Load(ctx, s.root)
		}
		if _, _, ok := next.FindDocument(id); !ok {
			return s.app.loader.Load(ctx, s.root)
		}
		data, err := os.ReadFile(path) //nolint:gosec // path is below the workspace root
		if err != nil {
			return s.app.loader.Load(ctx, s.root)
		}
		next, err = next.WithDocumentText(id, &domain.SourceText{Text: string(data), Encoding: config.DefaultEncoding})
		if err != nil {
			return nil, err
		}
	}
	return next, nil
}
