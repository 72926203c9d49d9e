package snapshot

import "go.trai.ch/replica/internal/core/domain"

// CheckNarrowed exposes the narrowed-result assertion.
func CheckNarrowed(base, s *domain.Solution) error {
	return checkNarrowed(base, s)
}
