package daemon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	replicav1 "go.trai.ch/replica/api/replica/v1"
	"go.trai.ch/replica/internal/adapters/daemon"
	"go.trai.ch/replica/internal/core/domain"
	"google.golang.org/protobuf/proto"
)

func TestSummarize(t *testing.T) {
	sol := fixture(t)

	s := daemon.Summarize(sol)
	assert.Equal(t, sol.Checksum, s.Checksum)
	assert.Equal(t, domain.SolutionID("sln"), s.Solution)
	assert.False(t, s.Narrowed)
	assert.Equal(t, 3, s.Documents)
	require.Len(t, s.Projects, 2)
	assert.Equal(t, domain.ProjectID("a"), s.Projects[0].ID)
	assert.Equal(t, []domain.ProjectID{"b"}, s.Projects[0].Refs)
	assert.Equal(t, 2, s.Projects[1].Documents)
	assert.Nil(t, s.Projects[1].Refs)
}

func TestSummarize_Cone(t *testing.T) {
	sol := fixture(t)
	view, err := sol.Cone([]domain.ProjectID{"b"})
	require.NoError(t, err)

	s := daemon.Summarize(view)
	assert.True(t, s.Narrowed)
	assert.Equal(t, view.Checksum, s.Checksum)
	require.Len(t, s.Projects, 1)
	assert.Equal(t, domain.ProjectID("b"), s.Projects[0].ID)
	assert.Equal(t, 2, s.Documents)
}

func TestSummary_SurvivesWireEncoding(t *testing.T) {
	want := daemon.Summarize(fixture(t))

	data, err := proto.Marshal(daemon.SummaryToResponse(want))
	require.NoError(t, err)
	var resp replicav1.DescribeResponse
	require.NoError(t, proto.Unmarshal(data, &resp))

	assert.Equal(t, want, daemon.SummaryFromResponse(&resp))
}

func TestAssetKind_OutOfRangeIsUnknown(t *testing.T) {
	assert.Equal(t, domain.KindSourceText, daemon.AssetKind(uint32(domain.KindSourceText)))
	assert.Equal(t, domain.KindUnknown, daemon.AssetKind(256+uint32(domain.KindSourceText)))
}
