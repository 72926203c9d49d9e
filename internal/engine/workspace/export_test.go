package workspace

import "go.trai.ch/replica/internal/core/domain"

// RefCount returns the reference count of the record for root, or 0 when there is none.
func (c *Coordinator) RefCount(root domain.Checksum) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r, ok := c.records[root]; ok {
		return r.refs
	}
	return 0
}

// ReleaseUnchecked drops a reference of the lease's record, bypassing the once guard.
func (c *Coordinator) ReleaseUnchecked(l *Lease) {
	c.release(l.r)
}
