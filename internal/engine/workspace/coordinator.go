// Package workspace tracks the snapshots the worker holds for a client, keyed by
// root checksum, and designates the client's primary snapshot.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports"
	"go.trai.ch/zerr"
)

// Coordinator deduplicates snapshot builds per root checksum and keeps each
// build alive while at least one lease or slot references it.
type Coordinator struct {
	builder ports.SnapshotBuilder
	logger  ports.Logger
	metrics ports.Metrics

	baseCtx context.Context
	stop    context.CancelFunc

	mu             sync.Mutex
	records        map[domain.Checksum]*record
	primary        *record
	lastRequested  *record
	current        *domain.Solution
	appliedVersion int64
	latestSeen     int64
}

var _ ports.Workspace = (*Coordinator)(nil)

// record is one in-flight or completed build. refs, solution and err are guarded by Coordinator.mu.
type record struct {
	checksum domain.Checksum
	refs     int
	cancel   context.CancelFunc
	done     chan struct{}

	// base is the snapshot the build derives from. Its assets stay pinned while the build runs.
	base *domain.Solution

	solution *domain.Solution
	err      error
}

func (r *record) finished() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// New creates a Coordinator. Builds run until their record is released or Close is called.
func New(builder ports.SnapshotBuilder, logger ports.Logger, metrics ports.Metrics) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		builder: builder,
		logger:  logger,
		metrics: metrics,
		baseCtx: ctx,
		stop:    cancel,
		records: make(map[domain.Checksum]*record),
	}
}

// Close cancels every running build.
func (c *Coordinator) Close() {
	c.stop()
}

// Acquire returns a lease on the snapshot for root, starting its build if no record exists.
// The record also takes the last-requested slot and, when primary is set, the primary slot.
func (c *Coordinator) Acquire(root domain.Checksum, primary bool) *Lease {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.acquireLocked(root, primary)
}

func (c *Coordinator) acquireLocked(root domain.Checksum, primary bool) *Lease {
	r := c.lookup(root)
	if r != nil {
		r.refs++
	} else {
		r = c.start(root)
	}

	c.lastRequested = c.swap(c.lastRequested, r)
	if primary {
		c.primary = c.swap(c.primary, r)
	}

	c.metrics.SnapshotRecords(len(c.records))
	return &Lease{c: c, r: r}
}

// lookup finds the record for root, checking the primary and last-requested slots first.
// A record whose build failed is retired so that the next request retries.
func (c *Coordinator) lookup(root domain.Checksum) *record {
	for _, r := range []*record{c.primary, c.lastRequested, c.records[root]} {
		if r == nil || r.checksum != root {
			continue
		}
		if r.finished() && r.err != nil {
			c.retire(r)
			continue
		}
		return r
	}
	return nil
}

// retire drops a failed record from the map and from both slots. Leases still
// holding it keep their reference until released.
func (c *Coordinator) retire(r *record) {
	if c.records[r.checksum] == r {
		delete(c.records, r.checksum)
	}
	if c.primary == r {
		c.primary = nil
		c.decrement(r)
	}
	if c.lastRequested == r {
		c.lastRequested = nil
		c.decrement(r)
	}
}

func (c *Coordinator) start(root domain.Checksum) *record {
	ctx, cancel := context.WithCancel(c.baseCtx)
	r := &record{
		checksum: root,
		refs:     1,
		cancel:   cancel,
		done:     make(chan struct{}),
		base:     c.current,
	}
	c.records[root] = r

	go c.build(ctx, r, r.base)
	return r
}

func (c *Coordinator) build(ctx context.Context, r *record, base *domain.Solution) {
	s, err := c.builder.Build(ctx, base, r.checksum)
	if err != nil && !errors.Is(err, context.Canceled) {
		c.logger.Error(zerr.With(zerr.Wrap(err, "snapshot build failed"), "checksum", r.checksum.String()))
	}

	c.mu.Lock()
	r.solution, r.err = s, err
	r.base = nil
	c.mu.Unlock()
	close(r.done)
}

// swap moves a slot from old to r, taking a reference on r and dropping the one held on old.
func (c *Coordinator) swap(old, r *record) *record {
	if old == r {
		return r
	}
	r.refs++
	if old != nil {
		c.decrement(old)
	}
	return r
}

// decrement drops one reference. At zero the build is cancelled and the record removed for good.
func (c *Coordinator) decrement(r *record) {
	if r.refs <= 0 {
		panic(fmt.Sprintf("workspace: snapshot %s released with no references left", r.checksum))
	}
	r.refs--
	if r.refs > 0 {
		return
	}

	r.cancel()
	if c.records[r.checksum] == r {
		delete(c.records, r.checksum)
	}
}

func (c *Coordinator) release(r *record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decrement(r)
	c.metrics.SnapshotRecords(len(c.records))
}

// SynchronizePrimary makes root the primary snapshot. Announcements not newer than the
// latest one seen are dropped; a finished build only replaces the current snapshot when
// its version is above the applied one.
func (c *Coordinator) SynchronizePrimary(ctx context.Context, root domain.Checksum, version int64) error {
	c.mu.Lock()
	if version <= c.latestSeen {
		latest := c.latestSeen
		c.mu.Unlock()
		c.logger.Warn(fmt.Sprintf("ignoring primary snapshot %s at version %d, version %d already announced", root, version, latest))
		return nil
	}
	c.latestSeen = version
	lease := c.acquireLocked(root, true)
	c.mu.Unlock()
	defer lease.Release()

	s, err := lease.Solution(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if version > c.appliedVersion {
		c.current = s
		c.appliedVersion = version
		c.metrics.PrimaryVersion(version)
	}
	return nil
}

// RunWithSnapshot runs fn with the snapshot for root and releases it on every exit path.
func (c *Coordinator) RunWithSnapshot(
	ctx context.Context,
	root domain.Checksum,
	fn func(context.Context, *domain.Solution) error,
) error {
	lease := c.Acquire(root, false)
	defer lease.Release()

	s, err := lease.Solution(ctx)
	if err != nil {
		return err
	}
	return fn(ctx, s)
}

// Current returns the applied primary snapshot and its version.
func (c *Coordinator) Current() (*domain.Solution, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current, c.appliedVersion
}

// PinnedChecksums returns every checksum reachable from a live snapshot or from
// the base of a build still running.
func (c *Coordinator) PinnedChecksums() domain.ChecksumSet {
	c.mu.Lock()
	live := make([]*domain.Solution, 0, len(c.records)+1)
	if c.current != nil {
		live = append(live, c.current)
	}
	for _, r := range c.records {
		switch {
		case r.solution != nil:
			live = append(live, r.solution)
		case r.base != nil && !r.finished():
			live = append(live, r.base)
		}
	}
	for _, r := range []*record{c.primary, c.lastRequested} {
		if r != nil && r.solution != nil {
			live = append(live, r.solution)
		}
	}
	c.mu.Unlock()

	set := make(domain.ChecksumSet)
	for _, s := range live {
		domain.AddChecksums(set, s)
	}
	return set
}

// Stats returns a summary of the coordinator state.
func (c *Coordinator) Stats() ports.WorkspaceStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := ports.WorkspaceStats{
		Records:        len(c.records),
		AppliedVersion: c.appliedVersion,
	}
	if c.primary != nil {
		stats.Primary = c.primary.checksum
	}
	if c.lastRequested != nil {
		stats.LastRequested = c.lastRequested.checksum
	}
	return stats
}
