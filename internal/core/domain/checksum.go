package domain

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
)

// Checksum identifies an asset by the hash of its serialized form.
// Two assets with equal checksums are interchangeable.
type Checksum uint64

// NullChecksum marks the absence of an asset.
const NullChecksum Checksum = 0

// IsNull reports whether c is the null checksum.
func (c Checksum) IsNull() bool {
	return c == NullChecksum
}

// String renders the checksum as 16 lowercase hex digits.
func (c Checksum) String() string {
	return fmt.Sprintf("%016x", uint64(c))
}

// ParseChecksum parses the output of Checksum.String.
func ParseChecksum(s string) (Checksum, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return NullChecksum, err
	}
	return Checksum(v), nil
}

// ChecksumOf hashes the asset kind together with the canonical JSON form of a.
// Asset types are plain data, so encoding cannot fail for them.
func ChecksumOf(a Asset) Checksum {
	data, err := json.Marshal(a)
	if err != nil {
		panic(fmt.Sprintf("domain: asset %T is not serializable: %v", a, err))
	}

	d := xxhash.New()
	_, _ = d.Write([]byte{byte(a.Kind())})
	_, _ = d.Write(data)
	return Checksum(d.Sum64())
}

// ChecksumSet is a set of checksums.
type ChecksumSet map[Checksum]struct{}

// Add inserts c into the set, ignoring the null checksum.
func (s ChecksumSet) Add(c Checksum) {
	if c.IsNull() {
		return
	}
	s[c] = struct{}{}
}

// Contains reports whether c is in the set.
func (s ChecksumSet) Contains(c Checksum) bool {
	_, ok := s[c]
	return ok
}

// Difference returns the members of s that are not in other.
func (s ChecksumSet) Difference(other ChecksumSet) []Checksum {
	var out []Checksum
	for c := range s {
		if !other.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}
