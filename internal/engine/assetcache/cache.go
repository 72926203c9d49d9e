// Package assetcache implements the in-memory store of deserialized assets keyed by checksum.
package assetcache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports"
)

// PinSource reports the checksums that must survive eviction regardless of age.
type PinSource interface {
	PinnedChecksums() domain.ChecksumSet
}

// Cache maps checksums to deserialized assets with last-access timestamps.
// Operations never fail; a miss sends the caller to the client.
type Cache struct {
	mu      sync.RWMutex
	entries map[domain.Checksum]*entry

	interval  time.Duration
	retention time.Duration

	logger  ports.Logger
	metrics ports.Metrics
}

type entry struct {
	value   domain.Asset
	touched atomic.Int64
}

func newEntry(v domain.Asset, now time.Time) *entry {
	e := &entry{value: v}
	e.touched.Store(now.UnixNano())
	return e
}

func (e *entry) touch(now time.Time) {
	e.touched.Store(now.UnixNano())
}

func (e *entry) idle(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, e.touched.Load()))
}

// New creates an empty cache that sweeps every interval and evicts entries idle for retention.
func New(interval, retention time.Duration, logger ports.Logger, metrics ports.Metrics) *Cache {
	return &Cache{
		entries:   make(map[domain.Checksum]*entry),
		interval:  interval,
		retention: retention,
		logger:    logger,
		metrics:   metrics,
	}
}

// Put stores v under c, replacing any previous value.
func (c *Cache) Put(cs domain.Checksum, v domain.Asset) {
	c.mu.Lock()
	c.entries[cs] = newEntry(v, time.Now())
	n := len(c.entries)
	c.mu.Unlock()

	c.metrics.CacheSize(n)
}

// TryGet returns the asset stored under cs and refreshes its timestamp.
func (c *Cache) TryGet(cs domain.Checksum) (domain.Asset, bool) {
	c.mu.RLock()
	e, ok := c.entries[cs]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	e.touch(time.Now())
	return e.value, true
}

// Contains reports whether cs is cached without refreshing it.
func (c *Cache) Contains(cs domain.Checksum) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[cs]
	return ok
}

// GetOrAdd stores v under cs unless a value is already present, and returns the stored value.
// Concurrent callers for one checksum converge on a single instance.
func (c *Cache) GetOrAdd(cs domain.Checksum, v domain.Asset) domain.Asset {
	now := time.Now()

	c.mu.RLock()
	e, ok := c.entries[cs]
	c.mu.RUnlock()
	if ok {
		e.touch(now)
		return e.value
	}

	c.mu.Lock()
	if e, ok := c.entries[cs]; ok {
		c.mu.Unlock()
		e.touch(now)
		return e.value
	}
	c.entries[cs] = newEntry(v, now)
	n := len(c.entries)
	c.mu.Unlock()

	c.metrics.CacheSize(n)
	return v
}

// Len returns the number of cached assets.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Run sweeps the cache every interval until ctx is done.
func (c *Cache) Run(ctx context.Context, pins PinSource) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Sweep(pins)
		}
	}
}

// Sweep removes every entry idle for longer than the retention that is not pinned.
// The pinned set is only computed when at least one entry is a candidate.
// It returns the number of evicted entries.
func (c *Cache) Sweep(pins PinSource) int {
	now := time.Now()

	c.mu.RLock()
	var candidates []domain.Checksum
	for cs, e := range c.entries {
		if e.idle(now) >= c.retention {
			candidates = append(candidates, cs)
		}
	}
	c.mu.RUnlock()

	if len(candidates) == 0 {
		return 0
	}

	// Collected outside the cache lock: the pin source takes its own lock.
	pinned := pins.PinnedChecksums()

	c.mu.Lock()
	evicted := 0
	for _, cs := range candidates {
		e, ok := c.entries[cs]
		if !ok || e.idle(now) < c.retention || pinned.Contains(cs) {
			continue
		}
		delete(c.entries, cs)
		evicted++
	}
	n := len(c.entries)
	c.mu.Unlock()

	c.metrics.AssetsEvicted(evicted)
	c.metrics.CacheSize(n)
	if evicted > 0 {
		c.logger.Debug(fmt.Sprintf("evicted %d assets, %d pinned, %d remaining", evicted, len(candidates)-evicted, n))
	}
	return evicted
}
