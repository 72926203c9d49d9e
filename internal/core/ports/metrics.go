package ports

//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks

// Metrics records counters and gauges of the asset cache and the workspace coordinator.
type Metrics interface {
	// CacheLookups records hits and misses of one asset cache lookup batch.
	CacheLookups(hits, misses int)
	// CacheSize records the number of assets currently cached.
	CacheSize(n int)
	// AssetsEvicted records assets removed by one cleanup sweep.
	AssetsEvicted(n int)
	// AssetsFetched records one round trip to the client and the assets it returned.
	AssetsFetched(n int)
	// SnapshotBuilt records a finished build, incremental or from scratch.
	SnapshotBuilt(incremental bool)
	// SnapshotRecords records the number of in-flight snapshot records.
	SnapshotRecords(n int)
	// PrimaryVersion records the version of the applied primary snapshot.
	PrimaryVersion(v int64)
}
