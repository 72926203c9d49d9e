package assetcache_test

import (
	"context"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports/mocks"
	"go.trai.ch/replica/internal/engine/assetcache"
	"go.uber.org/mock/gomock"
)

type pinned domain.ChecksumSet

func (p pinned) PinnedChecksums() domain.ChecksumSet {
	return domain.ChecksumSet(p)
}

type countingPins struct {
	mu    sync.Mutex
	calls int
	set   domain.ChecksumSet
}

func (p *countingPins) PinnedChecksums() domain.ChecksumSet {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.set
}

func newCache(t *testing.T) *assetcache.Cache {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().CacheSize(gomock.Any()).AnyTimes()
	metrics.EXPECT().AssetsEvicted(gomock.Any()).AnyTimes()

	return assetcache.New(domain.DefaultCleanupInterval, domain.DefaultRetention, logger, metrics)
}

func text(s string) (domain.Checksum, domain.Asset) {
	a := &domain.SourceText{Text: s}
	return domain.ChecksumOf(a), a
}

func TestCache_PutAndTryGet(t *testing.T) {
	c := newCache(t)
	cs, a := text("hello")

	_, ok := c.TryGet(cs)
	assert.False(t, ok)
	assert.False(t, c.Contains(cs))

	c.Put(cs, a)

	got, ok := c.TryGet(cs)
	require.True(t, ok)
	assert.Same(t, a, got)
	assert.True(t, c.Contains(cs))
	assert.Equal(t, 1, c.Len())
}

func TestCache_GetOrAdd_KeepsFirstValue(t *testing.T) {
	c := newCache(t)
	cs, first := text("hello")
	second := &domain.SourceText{Text: "hello"}

	assert.Same(t, first, c.GetOrAdd(cs, first))
	assert.Same(t, first, c.GetOrAdd(cs, second))
	assert.Equal(t, 1, c.Len())
}

func TestCache_GetOrAdd_Concurrent(t *testing.T) {
	c := newCache(t)
	cs, _ := text("shared")

	const workers = 32
	results := make([]domain.Asset, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Go(func() {
			results[i] = c.GetOrAdd(cs, &domain.SourceText{Text: "shared"})
		})
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestCache_Sweep(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := newCache(t)
		staleCS, stale := text("stale")
		keptCS, kept := text("kept")
		pinCS, pin := text("pinned")

		c.Put(staleCS, stale)
		c.Put(keptCS, kept)
		c.Put(pinCS, pin)

		time.Sleep(domain.DefaultRetention / 2)
		_, ok := c.TryGet(keptCS)
		require.True(t, ok)
		time.Sleep(domain.DefaultRetention/2 + time.Second)

		evicted := c.Sweep(pinned{pinCS: {}})

		assert.Equal(t, 1, evicted)
		assert.False(t, c.Contains(staleCS))
		assert.True(t, c.Contains(keptCS))
		assert.True(t, c.Contains(pinCS))
	})
}

func TestCache_Sweep_SkipsPinsWhenNothingIsStale(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := newCache(t)
		cs, a := text("fresh")
		c.Put(cs, a)

		pins := &countingPins{}
		assert.Zero(t, c.Sweep(pins))
		assert.Zero(t, pins.calls)

		time.Sleep(domain.DefaultRetention)
		assert.Equal(t, 1, c.Sweep(pins))
		assert.Equal(t, 1, pins.calls)
	})
}

func TestCache_Run(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := newCache(t)
		cs, a := text("short-lived")
		c.Put(cs, a)

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan struct{})
		go func() {
			c.Run(ctx, pinned{})
			close(done)
		}()

		// First tick at 30s: entry is 30s old, retained.
		time.Sleep(domain.DefaultCleanupInterval + time.Millisecond)
		synctest.Wait()
		assert.True(t, c.Contains(cs))

		// Second tick at 60s: entry reached the retention.
		time.Sleep(domain.DefaultCleanupInterval)
		synctest.Wait()
		assert.False(t, c.Contains(cs))

		cancel()
		<-done
	})
}
