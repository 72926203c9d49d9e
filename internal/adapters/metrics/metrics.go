// Package metrics exports worker counters and gauges to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/replica/internal/core/ports"
	"go.trai.ch/zerr"
)

const namespace = "replica"

// Prometheus implements ports.Metrics on its own registry.
type Prometheus struct {
	registry *prometheus.Registry

	lookups        *prometheus.CounterVec
	cacheSize      prometheus.Gauge
	evicted        prometheus.Counter
	fetchRequests  prometheus.Counter
	fetchedAssets  prometheus.Counter
	snapshotsBuilt *prometheus.CounterVec
	records        prometheus.Gauge
	primaryVersion prometheus.Gauge
}

var _ ports.Metrics = (*Prometheus)(nil)

// NewPrometheus creates the collectors and registers them on a fresh registry.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Prometheus{
		registry: reg,
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "asset_cache_lookups_total",
			Help:      "Asset cache lookups by result",
		}, []string{"result"}),
		cacheSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "asset_cache_entries",
			Help:      "Number of assets held by the asset cache",
		}),
		evicted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "asset_cache_evictions_total",
			Help:      "Assets removed by cleanup sweeps",
		}),
		fetchRequests: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "asset_fetch_requests_total",
			Help:      "Round trips to the client asset service",
		}),
		fetchedAssets: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "asset_fetch_assets_total",
			Help:      "Assets received from the client",
		}),
		snapshotsBuilt: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshots_built_total",
			Help:      "Snapshots built by mode",
		}, []string{"mode"}),
		records: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_records",
			Help:      "Snapshot records held by the workspace coordinator",
		}),
		primaryVersion: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "primary_version",
			Help:      "Version of the applied primary snapshot",
		}),
	}
}

// Registry returns the registry the collectors are registered on.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// CacheLookups implements ports.Metrics.
func (p *Prometheus) CacheLookups(hits, misses int) {
	p.lookups.WithLabelValues("hit").Add(float64(hits))
	p.lookups.WithLabelValues("miss").Add(float64(misses))
}

// CacheSize implements ports.Metrics.
func (p *Prometheus) CacheSize(n int) {
	p.cacheSize.Set(float64(n))
}

// AssetsEvicted implements ports.Metrics.
func (p *Prometheus) AssetsEvicted(n int) {
	p.evicted.Add(float64(n))
}

// AssetsFetched implements ports.Metrics.
func (p *Prometheus) AssetsFetched(n int) {
	p.fetchRequests.Inc()
	p.fetchedAssets.Add(float64(n))
}

// SnapshotBuilt implements ports.Metrics.
func (p *Prometheus) SnapshotBuilt(incremental bool) {
	mode := "full"
	if incremental {
		mode = "incremental"
	}
	p.snapshotsBuilt.WithLabelValues(mode).Inc()
}

// SnapshotRecords implements ports.Metrics.
func (p *Prometheus) SnapshotRecords(n int) {
	p.records.Set(float64(n))
}

// PrimaryVersion implements ports.Metrics.
func (p *Prometheus) PrimaryVersion(v int64) {
	p.primaryVersion.Set(float64(v))
}

// Handler returns the HTTP handler exposing the registry.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Serve exposes /metrics on addr until ctx is done.
func (p *Prometheus) Serve(ctx context.Context, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to listen for metrics"), "addr", addr)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", p.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return zerr.Wrap(err, "metrics server failed")
	}
	return nil
}

// Noop discards every measurement.
type Noop struct{}

var _ ports.Metrics = Noop{}

func (Noop) CacheLookups(int, int) {}
func (Noop) CacheSize(int)         {}
func (Noop) AssetsEvicted(int)     {}
func (Noop) AssetsFetched(int)     {}
func (Noop) SnapshotBuilt(bool)    {}
func (Noop) SnapshotRecords(int)   {}
func (Noop) PrimaryVersion(int64)  {}
