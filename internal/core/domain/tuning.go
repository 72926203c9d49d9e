package domain

import "time"

const (
	// DefaultCleanupInterval is how often the asset cache looks for stale entries.
	DefaultCleanupInterval = 30 * time.Second

	// DefaultRetention is how long an untouched asset survives in the cache.
	DefaultRetention = 60 * time.Second

	// DefaultChecksumBufferSize is the initial capacity of pooled checksum batches.
	DefaultChecksumBufferSize = 1024

	// DefaultProjectSyncThreshold is the number of projects up to which bulk
	// project sync runs one scoped request per project in parallel.
	DefaultProjectSyncThreshold = 4

	// DefaultDocumentBulkThreshold is the number of changed documents in one
	// project above which the whole project is synchronized in one request.
	DefaultDocumentBulkThreshold = 2

	// DefaultIdleTimeout is how long the worker daemon stays up without requests.
	DefaultIdleTimeout = 3 * time.Hour
)

// Tuning holds the worker's tunable constants.
type Tuning struct {
	CleanupInterval       time.Duration `validate:"gt=0"`
	Retention             time.Duration `validate:"gt=0"`
	ChecksumBufferSize    int           `validate:"gt=0"`
	ProjectSyncThreshold  int           `validate:"gte=0"`
	DocumentBulkThreshold int           `validate:"gte=0"`
	IdleTimeout           time.Duration `validate:"gt=0"`

	// Verify recomputes the checksum of every built snapshot and fails on mismatch.
	Verify bool
}

// DefaultTuning returns the production defaults.
func DefaultTuning() Tuning {
	return Tuning{
		CleanupInterval:       DefaultCleanupInterval,
		Retention:             DefaultRetention,
		ChecksumBufferSize:    DefaultChecksumBufferSize,
		ProjectSyncThreshold:  DefaultProjectSyncThreshold,
		DocumentBulkThreshold: DefaultDocumentBulkThreshold,
		IdleTimeout:           DefaultIdleTimeout,
	}
}
