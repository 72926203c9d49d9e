package workspace

import (
	"context"
	"sync"

	"go.trai.ch/replica/internal/core/domain"
)

// Lease keeps one snapshot record alive until released.
type Lease struct {
	c    *Coordinator
	r    *record
	once sync.Once
}

// Checksum returns the root checksum the lease was acquired for.
func (l *Lease) Checksum() domain.Checksum {
	return l.r.checksum
}

// Solution waits for the snapshot build shared by every holder of the record.
func (l *Lease) Solution(ctx context.Context) (*domain.Solution, error) {
	select {
	case <-l.r.done:
		return l.r.solution, l.r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release drops the lease's reference. Calling it again has no effect.
func (l *Lease) Release() {
	l.once.Do(func() {
		l.c.release(l.r)
	})
}
