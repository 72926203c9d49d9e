package workspace_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/domain/domaintest"
	"go.trai.ch/replica/internal/core/ports/mocks"
	"go.trai.ch/replica/internal/engine/workspace"
	"go.uber.org/mock/gomock"
)

var errBuild = errors.New("client went away")

type buildCall struct {
	base   *domain.Solution
	target domain.Checksum
}

// fakeBuilder returns registered solutions, optionally waiting on a per-target gate.
type fakeBuilder struct {
	mu       sync.Mutex
	calls    []buildCall
	results  map[domain.Checksum]*domain.Solution
	gates    map[domain.Checksum]chan struct{}
	failures map[domain.Checksum]int
}

func newFakeBuilder(solutions ...*domain.Solution) *fakeBuilder {
	b := &fakeBuilder{
		results:  make(map[domain.Checksum]*domain.Solution),
		gates:    make(map[domain.Checksum]chan struct{}),
		failures: make(map[domain.Checksum]int),
	}
	for _, s := range solutions {
		b.results[s.Checksum] = s
	}
	return b
}

func (b *fakeBuilder) gate(c domain.Checksum) chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan struct{})
	b.gates[c] = ch
	return ch
}

func (b *fakeBuilder) Build(ctx context.Context, base *domain.Solution, target domain.Checksum) (*domain.Solution, error) {
	b.mu.Lock()
	b.calls = append(b.calls, buildCall{base: base, target: target})
	gate := b.gates[target]
	fail := b.failures[target] > 0
	if fail {
		b.failures[target]--
	}
	b.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if fail {
		return nil, errBuild
	}
	return b.results[target], nil
}

func (b *fakeBuilder) Calls() []buildCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]buildCall(nil), b.calls...)
}

func (b *fakeBuilder) Targets() []domain.Checksum {
	var out []domain.Checksum
	for _, c := range b.Calls() {
		out = append(out, c.target)
	}
	return out
}

func newCoordinator(t *testing.T, b *fakeBuilder) (*workspace.Coordinator, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().SnapshotRecords(gomock.Any()).AnyTimes()
	metrics.EXPECT().PrimaryVersion(gomock.Any()).AnyTimes()

	c := workspace.New(b, logger, metrics)
	t.Cleanup(c.Close)
	return c, logger
}

func solution(t *testing.T, project string) *domain.Solution {
	t.Helper()
	return domaintest.Solution(t, domaintest.Project(t, project,
		[]*domain.Document{domaintest.Doc(project+"/main.cs", "class "+project+" {}")}))
}

func TestAcquire_ConcurrentCallersShareOneBuild(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := solution(t, "A")
		b := newFakeBuilder(s)
		gate := b.gate(s.Checksum)
		c, _ := newCoordinator(t, b)

		const callers = 50
		leases := make([]*workspace.Lease, callers)
		var wg sync.WaitGroup
		for i := range callers {
			wg.Go(func() {
				leases[i] = c.Acquire(s.Checksum, false)
			})
		}
		wg.Wait()
		synctest.Wait()

		assert.Len(t, b.Calls(), 1)
		// One reference per caller plus the last-requested slot.
		assert.Equal(t, callers+1, c.RefCount(s.Checksum))

		close(gate)
		for _, l := range leases {
			got, err := l.Solution(t.Context())
			require.NoError(t, err)
			assert.Same(t, s, got)
			l.Release()
		}

		assert.Equal(t, 1, c.RefCount(s.Checksum))
		assert.Equal(t, 1, c.Stats().Records)
		assert.Equal(t, s.Checksum, c.Stats().LastRequested)
	})
}

func TestRelease_AtZeroCancelsOnlyThatBuild(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		x, y := solution(t, "X"), solution(t, "Y")
		b := newFakeBuilder(x, y)
		b.gate(x.Checksum)
		gateY := b.gate(y.Checksum)
		c, _ := newCoordinator(t, b)

		lx := c.Acquire(x.Checksum, false)
		ly := c.Acquire(y.Checksum, false)
		assert.Equal(t, 1, c.RefCount(x.Checksum))

		lx.Release()
		synctest.Wait()

		_, err := lx.Solution(t.Context())
		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, c.RefCount(x.Checksum))
		assert.Equal(t, 1, c.Stats().Records)

		close(gateY)
		got, err := ly.Solution(t.Context())
		require.NoError(t, err)
		assert.Same(t, y, got)

		// A removed record is never resurrected.
		c.Acquire(x.Checksum, false)
		synctest.Wait()
		assert.ElementsMatch(t, []domain.Checksum{x.Checksum, y.Checksum, x.Checksum}, b.Targets())
	})
}

func TestRelease_Idempotent(t *testing.T) {
	s := solution(t, "A")
	c, _ := newCoordinator(t, newFakeBuilder(s))

	l := c.Acquire(s.Checksum, false)
	assert.Equal(t, 2, c.RefCount(s.Checksum))

	l.Release()
	l.Release()
	assert.Equal(t, 1, c.RefCount(s.Checksum))
}

func TestRelease_BelowZeroPanics(t *testing.T) {
	x, y := solution(t, "X"), solution(t, "Y")
	c, _ := newCoordinator(t, newFakeBuilder(x, y))

	lx := c.Acquire(x.Checksum, false)
	c.Acquire(y.Checksum, false)
	lx.Release()
	require.Zero(t, c.RefCount(x.Checksum))

	assert.Panics(t, func() { c.ReleaseUnchecked(lx) })
}

func TestAcquire_PrimarySlot(t *testing.T) {
	x, y := solution(t, "X"), solution(t, "Y")
	c, _ := newCoordinator(t, newFakeBuilder(x, y))

	lx := c.Acquire(x.Checksum, true)
	lx.Release()
	// Held by both slots.
	assert.Equal(t, 2, c.RefCount(x.Checksum))

	ly := c.Acquire(y.Checksum, false)
	ly.Release()
	assert.Equal(t, 1, c.RefCount(x.Checksum))
	assert.Equal(t, 1, c.RefCount(y.Checksum))

	stats := c.Stats()
	assert.Equal(t, x.Checksum, stats.Primary)
	assert.Equal(t, y.Checksum, stats.LastRequested)
	assert.Equal(t, 2, stats.Records)
}

func TestSynchronizePrimary_Monotonic(t *testing.T) {
	v5, v3, v7, v6 := solution(t, "five"), solution(t, "three"), solution(t, "seven"), solution(t, "six")
	b := newFakeBuilder(v5, v3, v7, v6)
	c, logger := newCoordinator(t, b)
	logger.EXPECT().Warn(gomock.Any()).Times(2)

	ctx := context.Background()
	require.NoError(t, c.SynchronizePrimary(ctx, v5.Checksum, 5))
	require.NoError(t, c.SynchronizePrimary(ctx, v3.Checksum, 3))
	require.NoError(t, c.SynchronizePrimary(ctx, v7.Checksum, 7))
	require.NoError(t, c.SynchronizePrimary(ctx, v6.Checksum, 6))

	current, version := c.Current()
	assert.Same(t, v7, current)
	assert.Equal(t, int64(7), version)
	assert.Equal(t, v7.Checksum, c.Stats().Primary)

	calls := b.Calls()
	require.Len(t, calls, 2)
	assert.Nil(t, calls[0].base)
	assert.Same(t, v5, calls[1].base)
	assert.Equal(t, v7.Checksum, calls[1].target)
}

func TestSynchronizePrimary_LateCompletionIsNotApplied(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		v5, v7 := solution(t, "five"), solution(t, "seven")
		b := newFakeBuilder(v5, v7)
		gate5, gate7 := b.gate(v5.Checksum), b.gate(v7.Checksum)
		c, _ := newCoordinator(t, b)

		errs := make(chan error, 2)
		go func() { errs <- c.SynchronizePrimary(t.Context(), v5.Checksum, 5) }()
		synctest.Wait()
		go func() { errs <- c.SynchronizePrimary(t.Context(), v7.Checksum, 7) }()
		synctest.Wait()

		close(gate7)
		require.NoError(t, <-errs)
		close(gate5)
		require.NoError(t, <-errs)

		current, version := c.Current()
		assert.Same(t, v7, current)
		assert.Equal(t, int64(7), version)
	})
}

func TestRunWithSnapshot(t *testing.T) {
	s := solution(t, "A")
	c, _ := newCoordinator(t, newFakeBuilder(s))

	var seen *domain.Solution
	err := c.RunWithSnapshot(context.Background(), s.Checksum, func(_ context.Context, got *domain.Solution) error {
		seen = got
		return nil
	})
	require.NoError(t, err)
	assert.Same(t, s, seen)
	assert.Equal(t, 1, c.RefCount(s.Checksum))

	boom := errors.New("boom")
	err = c.RunWithSnapshot(context.Background(), s.Checksum, func(context.Context, *domain.Solution) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, c.RefCount(s.Checksum))
}

func TestRunWithSnapshot_CallerCancelled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := solution(t, "A")
		b := newFakeBuilder(s)
		b.gate(s.Checksum)
		c, _ := newCoordinator(t, b)

		ctx, cancel := context.WithCancel(t.Context())
		errs := make(chan error, 1)
		go func() {
			errs <- c.RunWithSnapshot(ctx, s.Checksum, func(context.Context, *domain.Solution) error {
				return nil
			})
		}()
		synctest.Wait()
		assert.Equal(t, 2, c.RefCount(s.Checksum))

		cancel()
		require.ErrorIs(t, <-errs, context.Canceled)
		assert.Equal(t, 1, c.RefCount(s.Checksum))
	})
}

func TestRunWithSnapshot_FailedBuildIsRetried(t *testing.T) {
	s := solution(t, "A")
	b := newFakeBuilder(s)
	b.failures[s.Checksum] = 1
	c, logger := newCoordinator(t, b)
	logger.EXPECT().Error(gomock.Any()).Times(1)

	noop := func(context.Context, *domain.Solution) error { return nil }
	require.ErrorIs(t, c.RunWithSnapshot(context.Background(), s.Checksum, noop), errBuild)
	require.NoError(t, c.RunWithSnapshot(context.Background(), s.Checksum, noop))

	assert.Len(t, b.Calls(), 2)
	assert.Equal(t, 1, c.Stats().Records)
}

func TestSynchronizePrimary_FailedBuildRetriedOnce(t *testing.T) {
	s := solution(t, "A")
	b := newFakeBuilder(s)
	b.failures[s.Checksum] = 1
	c, logger := newCoordinator(t, b)
	logger.EXPECT().Error(gomock.Any()).Times(1)

	ctx := context.Background()
	require.ErrorIs(t, c.SynchronizePrimary(ctx, s.Checksum, 1), errBuild)

	for range 2 {
		l := c.Acquire(s.Checksum, false)
		got, err := l.Solution(ctx)
		require.NoError(t, err)
		assert.Same(t, s, got)
		l.Release()
	}

	assert.Len(t, b.Calls(), 2)
	assert.Equal(t, 1, c.RefCount(s.Checksum))
	stats := c.Stats()
	assert.Equal(t, 1, stats.Records)
	assert.Zero(t, stats.Primary)
	assert.Equal(t, s.Checksum, stats.LastRequested)
}

func TestPinnedChecksums_RunningBuildPinsItsBase(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		base, next, other := solution(t, "base"), solution(t, "next"), solution(t, "other")
		b := newFakeBuilder(base, next, other)
		gate := b.gate(next.Checksum)
		c, _ := newCoordinator(t, b)

		require.NoError(t, c.SynchronizePrimary(t.Context(), base.Checksum, 1))
		lease := c.Acquire(next.Checksum, false)
		defer lease.Release()
		synctest.Wait()

		// The primary moves on while next is still building from base.
		require.NoError(t, c.SynchronizePrimary(t.Context(), other.Checksum, 2))
		require.Zero(t, c.RefCount(base.Checksum))

		pinned := c.PinnedChecksums()
		for cs := range domain.CollectChecksums(base) {
			assert.True(t, pinned.Contains(cs))
		}

		close(gate)
		_, err := lease.Solution(t.Context())
		require.NoError(t, err)

		pinned = c.PinnedChecksums()
		assert.False(t, pinned.Contains(base.Checksum))
		assert.True(t, pinned.Contains(next.Checksum))
	})
}

func TestPinnedChecksums(t *testing.T) {
	primary, requested, other := solution(t, "P"), solution(t, "R"), solution(t, "O")
	c, _ := newCoordinator(t, newFakeBuilder(primary, requested, other))
	ctx := context.Background()
	noop := func(context.Context, *domain.Solution) error { return nil }

	require.NoError(t, c.SynchronizePrimary(ctx, primary.Checksum, 1))
	require.NoError(t, c.RunWithSnapshot(ctx, requested.Checksum, noop))

	pinned := c.PinnedChecksums()
	for cs := range domain.CollectChecksums(primary) {
		assert.True(t, pinned.Contains(cs))
	}
	for cs := range domain.CollectChecksums(requested) {
		assert.True(t, pinned.Contains(cs))
	}

	require.NoError(t, c.RunWithSnapshot(ctx, other.Checksum, noop))
	pinned = c.PinnedChecksums()
	assert.False(t, pinned.Contains(requested.Checksum))
	assert.True(t, pinned.Contains(primary.Checksum))
	assert.True(t, pinned.Contains(other.Checksum))
}
