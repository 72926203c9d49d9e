package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/replica/internal/adapters/daemon"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports"
	"go.trai.ch/zerr"
)

// DescribeOptions configures Describe.
type DescribeOptions struct {
	// Cone narrows the snapshot to these projects.
	Cone []string
	// JSON prints the summary as JSON.
	JSON bool
}

// Describe has the worker materialize the current state of the workspace at root
// and prints the worker's summary of it. The summary must match the local one.
func (a *App) Describe(ctx context.Context, root string, opts DescribeOptions) error {
	root, err := filepath.Abs(root)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve workspace root")
	}
	sol, err := a.loader.Load(ctx, root)
	if err != nil {
		return err
	}
	if len(opts.Cone) > 0 {
		ids := make([]domain.ProjectID, len(opts.Cone))
		for i, id := range opts.Cone {
			ids[i] = domain.ProjectID(id)
		}
		if sol, err = sol.Cone(ids); err != nil {
			return err
		}
	}

	var summary *ports.SnapshotSummary
	err = a.withWorker(ctx, root, func(ctx context.Context, client ports.WorkerClient) error {
		a.publisher.Publish(sol)
		summary, err = client.Describe(ctx, sol.Checksum)
		return err
	})
	if err != nil {
		return err
	}
	if summary == nil {
		return ctxErr(ctx)
	}

	local := daemon.Summarize(sol)
	if summary.Checksum != local.Checksum || summary.Documents != local.Documents {
		err := zerr.Wrap(domain.ErrChecksumMismatch, "worker snapshot differs from the workspace")
		err = zerr.With(err, "expected", local.Checksum.String())
		return zerr.With(err, "actual", summary.Checksum.String())
	}

	p := newPrinter(a.stdout)
	if opts.JSON {
		return p.json(summary)
	}
	p.summary(summary)
	return nil
}

// ctxErr reports why a worker call ended without a result.
func ctxErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return domain.ErrDaemonUnavailable
}
