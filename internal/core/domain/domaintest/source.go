package domaintest

import (
	"context"
	"maps"
	"sync"

	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports"
)

// Source is an in-memory ports.AssetSource that records every request.
type Source struct {
	codec ports.Codec

	mu       sync.Mutex
	assets   map[domain.Checksum]domain.Asset
	requests []ports.FetchRequest
}

// NewSource serves every asset of the given solutions.
func NewSource(codec ports.Codec, solutions ...*domain.Solution) *Source {
	s := &Source{
		codec:  codec,
		assets: make(map[domain.Checksum]domain.Asset),
	}
	for _, sol := range solutions {
		s.Add(sol)
	}
	return s
}

// Add serves every asset of sol in addition to the current ones.
func (s *Source) Add(sol *domain.Solution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	maps.Copy(s.assets, domain.Assets(sol))
}

// AddAssets serves individual assets under their checksum.
func (s *Source) AddAssets(assets ...domain.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range assets {
		s.assets[domain.ChecksumOf(a)] = a
	}
}

// Forget stops serving c.
func (s *Source) Forget(c domain.Checksum) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.assets, c)
}

// Requests returns every request received so far.
func (s *Source) Requests() []ports.FetchRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.FetchRequest(nil), s.requests...)
}

// Requested returns every checksum requested so far.
func (s *Source) Requested() domain.ChecksumSet {
	set := make(domain.ChecksumSet)
	for _, req := range s.Requests() {
		for _, c := range req.Checksums {
			set.Add(c)
		}
	}
	return set
}

// Reset forgets the recorded requests.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

// FetchAssets implements ports.AssetSource.
func (s *Source) FetchAssets(ctx context.Context, req ports.FetchRequest, yield func(ports.AssetPayload) error) error {
	s.mu.Lock()
	req.Checksums = append([]domain.Checksum(nil), req.Checksums...)
	s.requests = append(s.requests, req)
	found := make(map[domain.Checksum]domain.Asset, len(req.Checksums))
	for _, c := range req.Checksums {
		if a, ok := s.assets[c]; ok {
			found[c] = a
		}
	}
	s.mu.Unlock()

	for _, c := range req.Checksums {
		a, ok := found[c]
		if !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := s.codec.Encode(a)
		if err != nil {
			return err
		}
		if err := yield(ports.AssetPayload{Checksum: c, Kind: a.Kind(), Data: data}); err != nil {
			return err
		}
	}
	return nil
}
