package ports

import (
	"context"

	"go.trai.ch/replica/internal/core/domain"
)

//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks

// SnapshotBuilder derives a solution for a target checksum, from base when it is non-nil.
type SnapshotBuilder interface {
	Build(ctx context.Context, base *domain.Solution, target domain.Checksum) (*domain.Solution, error)
}

// WorkspaceStats summarizes the coordinator state.
type WorkspaceStats struct {
	Records        int
	Primary        domain.Checksum
	LastRequested  domain.Checksum
	AppliedVersion int64
}

// Workspace is the worker's view of the client's snapshots.
type Workspace interface {
	// SynchronizePrimary makes root the current snapshot if version is newer than the applied one.
	SynchronizePrimary(ctx context.Context, root domain.Checksum, version int64) error
	// RunWithSnapshot runs fn with the snapshot for root, keeping it alive for the duration.
	RunWithSnapshot(ctx context.Context, root domain.Checksum, fn func(context.Context, *domain.Solution) error) error
	// Stats returns a summary of the coordinator state.
	Stats() WorkspaceStats
}

// SolutionLoader builds a solution from the workspace at root.
type SolutionLoader interface {
	Load(ctx context.Context, root string) (*domain.Solution, error)
}
