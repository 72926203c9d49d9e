package source_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	replicav1 "go.trai.ch/replica/api/replica/v1"
	"go.trai.ch/replica/internal/adapters/codec"
	"go.trai.ch/replica/internal/adapters/source"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/domain/domaintest"
	"go.trai.ch/replica/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent []*replicav1.Asset
}

func (s *fakeStream) Context() context.Context { return s.ctx }

func (s *fakeStream) Send(m *replicav1.Asset) error {
	s.sent = append(s.sent, m)
	return nil
}

func newPublisher(t *testing.T, keep int) (*source.Publisher, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	c, err := codec.New()
	require.NoError(t, err)
	return source.NewPublisherWithKeep(c, log, keep), log
}

func solution(t *testing.T, text string) *domain.Solution {
	t.Helper()
	return domaintest.Solution(t,
		domaintest.Project(t, "a", []*domain.Document{domaintest.Doc("a1", text)}),
		domaintest.Project(t, "b", []*domain.Document{domaintest.Doc("b1", "class B {}")}),
	)
}

func TestPublisher_LookupScoped(t *testing.T) {
	pub, _ := newPublisher(t, 2)
	sol := solution(t, "v1")
	pub.Publish(sol)

	doc := sol.Projects["a"].Documents.ByID["a1"]

	a, ok := pub.Lookup(domain.AssetScope{ProjectID: "a"}, doc.State.Text)
	require.True(t, ok)
	assert.Equal(t, doc.Text, a)

	// The scope is a hint: assets outside it are still found.
	a, ok = pub.Lookup(domain.AssetScope{ProjectID: "b"}, doc.State.Text)
	require.True(t, ok)
	assert.Equal(t, doc.Text, a)

	_, ok = pub.Lookup(domain.AssetScope{}, 0xdead)
	assert.False(t, ok)
}

func TestPublisher_KeepsRecentSolutions(t *testing.T) {
	pub, _ := newPublisher(t, 2)
	v1, v2, v3 := solution(t, "v1"), solution(t, "v2"), solution(t, "v3")

	pub.Publish(v1)
	pub.Publish(v2)
	_, ok := pub.Lookup(domain.AssetScope{}, v1.Checksum)
	assert.True(t, ok)

	pub.Publish(v3)
	_, ok = pub.Lookup(domain.AssetScope{}, v1.Checksum)
	assert.False(t, ok, "oldest solution should be dropped")
	_, ok = pub.Lookup(domain.AssetScope{}, v2.Checksum)
	assert.True(t, ok)

	// Shared assets stay available through newer solutions.
	b1 := v1.Projects["b"].Checksum
	_, ok = pub.Lookup(domain.AssetScope{ProjectID: "b"}, b1)
	assert.True(t, ok)
}

func TestPublisher_FetchAssets(t *testing.T) {
	pub, log := newPublisher(t, 1)
	sol := solution(t, "v1")
	pub.Publish(sol)

	var warned string
	log.EXPECT().Warn(gomock.Any()).Do(func(msg string) { warned = msg })

	stream := &fakeStream{ctx: context.Background()}
	err := pub.FetchAssets(&replicav1.FetchAssetsRequest{
		RequestId:  "r-7",
		Serializer: codec.Name,
		Checksums:  []uint64{uint64(sol.Checksum), 0xdead, uint64(sol.State.Options)},
	}, stream)
	require.NoError(t, err)

	require.Len(t, stream.sent, 2)
	assert.Equal(t, uint64(sol.Checksum), stream.sent[0].GetChecksum())
	assert.Equal(t, uint32(domain.KindSolutionState), stream.sent[0].GetKind())
	assert.Equal(t, uint32(domain.KindSolutionOptions), stream.sent[1].GetKind())
	assert.Equal(t, "request r-7: 1 of 3 assets are not published", warned)
}

func TestPublisher_FetchAssetsUnknownSerializer(t *testing.T) {
	pub, _ := newPublisher(t, 1)

	err := pub.FetchAssets(&replicav1.FetchAssetsRequest{Serializer: "xml"}, &fakeStream{ctx: context.Background()})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, err.Error(), "unknown serializer")
}

func TestPublisher_FetchAssetsCancelled(t *testing.T) {
	pub, _ := newPublisher(t, 1)
	sol := solution(t, "v1")
	pub.Publish(sol)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stream := &fakeStream{ctx: ctx}

	err := pub.FetchAssets(&replicav1.FetchAssetsRequest{
		Serializer: codec.Name,
		Checksums:  []uint64{uint64(sol.Checksum)},
	}, stream)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, stream.sent)
}
