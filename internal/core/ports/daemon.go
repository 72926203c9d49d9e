package ports

import (
	"context"
	"time"

	"go.trai.ch/replica/internal/core/domain"
)

//go:generate mockgen -source=daemon.go -destination=mocks/mock_daemon.go -package=mocks

// DaemonStatus represents the current state of the worker daemon.
type DaemonStatus struct {
	Running        bool            `json:"running"`
	PID            int             `json:"pid"`
	Uptime         time.Duration   `json:"uptime"`
	LastActivity   time.Time       `json:"last_activity"`
	IdleRemaining  time.Duration   `json:"idle_remaining"`
	Records        int             `json:"records"`
	Primary        domain.Checksum `json:"primary"`
	AppliedVersion int64           `json:"applied_version"`
}

// SnapshotSummary is the worker's description of one snapshot.
type SnapshotSummary struct {
	Checksum  domain.Checksum   `json:"checksum"`
	Solution  domain.SolutionID `json:"solution"`
	Narrowed  bool              `json:"narrowed"`
	Projects  []ProjectSummary  `json:"projects"`
	Documents int               `json:"documents"`
}

// ProjectSummary describes one project of a snapshot.
type ProjectSummary struct {
	ID        domain.ProjectID   `json:"id"`
	Name      string             `json:"name"`
	Checksum  domain.Checksum    `json:"checksum"`
	Documents int                `json:"documents"`
	Refs      []domain.ProjectID `json:"refs,omitempty"`
}

// WorkerClient defines the interface for communicating with the worker daemon.
type WorkerClient interface {
	// Attach tells the worker where to fetch assets from.
	Attach(ctx context.Context, endpoint string) error

	// SynchronizePrimary announces the client's current snapshot.
	SynchronizePrimary(ctx context.Context, root domain.Checksum, version int64) error

	// Describe asks the worker to materialize root and summarize it.
	Describe(ctx context.Context, root domain.Checksum) (*SnapshotSummary, error)

	// Ping checks if the daemon is alive and resets the inactivity timer.
	Ping(ctx context.Context) error

	// Status returns the current daemon status.
	Status(ctx context.Context) (*DaemonStatus, error)

	// Shutdown requests a graceful daemon shutdown.
	Shutdown(ctx context.Context) error

	// Close releases client resources.
	Close() error
}

// WorkerConnector manages the worker daemon lifecycle from the client's perspective.
type WorkerConnector interface {
	// Connect returns a client to the worker for root, spawning it if necessary.
	Connect(ctx context.Context, root string) (WorkerClient, error)

	// Dial returns a client to an already running worker for root without spawning one.
	Dial(root string) (WorkerClient, error)

	// IsRunning checks if the worker for root is running and responsive.
	IsRunning(root string) bool

	// Spawn starts a new worker process for root in the background.
	Spawn(ctx context.Context, root string) error
}
