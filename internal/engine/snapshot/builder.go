// Package snapshot derives solutions for a root checksum, incrementally from a
// base solution when one is available.
package snapshot

import (
	"context"
	"strings"

	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports"
	"go.trai.ch/replica/internal/engine/assetfetch"
	"go.trai.ch/zerr"
)

// Builder implements ports.SnapshotBuilder on top of an asset fetcher.
type Builder struct {
	fetcher *assetfetch.Fetcher
	tracer  ports.Tracer
	logger  ports.Logger
	metrics ports.Metrics

	documentBulkThreshold int
	verify                bool
}

var _ ports.SnapshotBuilder = (*Builder)(nil)

// New creates a Builder.
func New(
	fetcher *assetfetch.Fetcher,
	tracer ports.Tracer,
	logger ports.Logger,
	metrics ports.Metrics,
	tuning domain.Tuning,
) *Builder {
	return &Builder{
		fetcher:               fetcher,
		tracer:                tracer,
		logger:                logger,
		metrics:               metrics,
		documentBulkThreshold: tuning.DocumentBulkThreshold,
		verify:                tuning.Verify,
	}
}

// Build returns the solution for target. With a nil base every asset is synchronized first;
// otherwise the target is diffed against base and unchanged sub-trees are shared.
func (b *Builder) Build(ctx context.Context, base *domain.Solution, target domain.Checksum) (*domain.Solution, error) {
	if base != nil && base.Checksum == target {
		return base, nil
	}

	ctx, span := b.tracer.Start(ctx, "snapshot.build",
		ports.WithAttribute("checksum", target.String()),
		ports.WithAttribute("incremental", base != nil),
	)
	defer span.End()

	var (
		s   *domain.Solution
		err error
	)
	if base == nil {
		s, err = b.buildFull(ctx, target)
	} else {
		s, err = b.buildIncremental(ctx, base, target)
	}
	if err == nil && b.verify {
		err = b.verifySolution(ctx, s)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	b.metrics.SnapshotBuilt(base != nil)
	return s, nil
}

func (b *Builder) buildFull(ctx context.Context, target domain.Checksum) (*domain.Solution, error) {
	if err := b.fetcher.SynchronizeSolution(ctx, target); err != nil {
		return nil, err
	}
	return b.loadSolution(ctx, target)
}

// verifySolution hashes s again from its leaves. On mismatch it rebuilds target from
// scratch and reports how the two reachable asset sets differ.
func (b *Builder) verifySolution(ctx context.Context, s *domain.Solution) error {
	if domain.Recompute(s) == s.Checksum {
		return nil
	}

	fresh, err := b.buildFull(ctx, s.Checksum)
	if err != nil {
		return zerr.Wrap(err, "failed to rebuild snapshot for verification")
	}

	got := domain.HashedChecksums(s)
	want := domain.HashedChecksums(fresh)
	missing := want.Difference(got)
	extra := got.Difference(want)

	err = zerr.With(zerr.Wrap(domain.ErrChecksumMismatch, "snapshot does not hash to its checksum"), "checksum", s.Checksum.String())
	err = zerr.With(err, "missing", len(missing))
	err = zerr.With(err, "extra", len(extra))
	err = zerr.With(err, "divergent", strings.Join(domain.Divergence(s, fresh), ","))
	b.logger.Error(err)
	return err
}
