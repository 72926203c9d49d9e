package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/replica/internal/core/domain"
)

func TestChecksumOf_Stable(t *testing.T) {
	a := &domain.SourceText{Text: "class A {}", Encoding: "utf-8"}
	b := &domain.SourceText{Text: "class A {}", Encoding: "utf-8"}

	assert.Equal(t, domain.ChecksumOf(a), domain.ChecksumOf(b))
	assert.Equal(t, domain.ChecksumOf(a), domain.ChecksumOf(*a), "pointer and value hash alike")
	assert.NotEqual(t, domain.ChecksumOf(a), domain.ChecksumOf(&domain.SourceText{Text: "class B {}", Encoding: "utf-8"}))
}

func TestChecksumOf_KindIsPartOfTheHash(t *testing.T) {
	// Both encode to the same JSON object.
	analyzer := &domain.AnalyzerReference{FilePath: "/x.dll"}
	metadata := &domain.MetadataReference{FilePath: "/x.dll"}

	assert.NotEqual(t, domain.ChecksumOf(analyzer), domain.ChecksumOf(metadata))
}

func TestChecksumOf_MapOrderIndependent(t *testing.T) {
	a := &domain.SolutionOptions{Values: map[string]string{"a": "1", "b": "2", "c": "3"}}
	b := &domain.SolutionOptions{Values: map[string]string{"c": "3", "b": "2", "a": "1"}}

	assert.Equal(t, domain.ChecksumOf(a), domain.ChecksumOf(b))
}

func TestChecksum_StringRoundTrip(t *testing.T) {
	c := domain.Checksum(0xdeadbeef)
	assert.Equal(t, "00000000deadbeef", c.String())

	parsed, err := domain.ParseChecksum(c.String())
	require.NoError(t, err)
	assert.Equal(t, c, parsed)

	_, err = domain.ParseChecksum("not-hex")
	assert.Error(t, err)
}

func TestChecksumSet(t *testing.T) {
	set := make(domain.ChecksumSet)
	set.Add(1)
	set.Add(2)
	set.Add(domain.NullChecksum)

	assert.Len(t, set, 2)
	assert.True(t, set.Contains(1))
	assert.False(t, set.Contains(domain.NullChecksum))

	other := domain.ChecksumSet{2: {}}
	assert.Equal(t, []domain.Checksum{1}, set.Difference(other))
}

func TestNewAsset(t *testing.T) {
	for k := domain.KindSolutionState; k <= domain.KindSourceText; k++ {
		a, err := domain.NewAsset(k)
		require.NoError(t, err, k.String())
		assert.Equal(t, k, a.Kind())
	}

	_, err := domain.NewAsset(domain.KindUnknown)
	assert.ErrorIs(t, err, domain.ErrUnknownAssetKind)
	assert.Equal(t, "unknown", domain.AssetKind(200).String())
}
