package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/domain/domaintest"
	"go.trai.ch/zerr"
)

func TestNewSolution_ChecksumIsContentAddressed(t *testing.T) {
	build := func() *domain.Solution {
		return domaintest.Solution(t,
			domaintest.Project(t, "A", []*domain.Document{domaintest.Doc("A/a.cs", "a")}),
			domaintest.Project(t, "B", []*domain.Document{domaintest.Doc("B/b.cs", "b")}, domaintest.WithProjectRefs("A")),
		)
	}

	s1, s2 := build(), build()
	assert.Equal(t, s1.Checksum, s2.Checksum)
	assert.Equal(t, domain.ChecksumOf(s1.State), s1.Checksum)
	assert.Equal(t, s1.Checksum, domain.Recompute(s1))
}

func TestNewSolution_RejectsDuplicates(t *testing.T) {
	a := domaintest.Project(t, "A", nil)

	_, err := domain.NewSolution(&domain.SolutionAttributes{ID: "s"}, &domain.SolutionOptions{}, nil, []*domain.Project{a, a})
	require.ErrorIs(t, err, domain.ErrDuplicateProjectID)

	doc := domaintest.Doc("A/a.cs", "a")
	_, err = domain.NewProject(domain.ProjectContent{
		Attributes:         &domain.ProjectAttributes{ID: "A"},
		CompilationOptions: &domain.CompilationOptions{},
		ParseOptions:       &domain.ParseOptions{},
		Documents:          []*domain.Document{doc, doc},
	})
	require.ErrorIs(t, err, domain.ErrDuplicateDocumentID)
}

func TestCheckProjectReferences(t *testing.T) {
	tests := []struct {
		name      string
		projects  []*domain.Project
		wantCycle string
	}{
		{
			name: "acyclic chain",
			projects: []*domain.Project{
				domaintest.Project(t, "A", nil),
				domaintest.Project(t, "B", nil, domaintest.WithProjectRefs("A")),
				domaintest.Project(t, "C", nil, domaintest.WithProjectRefs("A", "B")),
			},
		},
		{
			name: "self reference",
			projects: []*domain.Project{
				domaintest.Project(t, "A", nil, domaintest.WithProjectRefs("A")),
			},
			wantCycle: "A -> A",
		},
		{
			name: "two node cycle",
			projects: []*domain.Project{
				domaintest.Project(t, "A", nil, domaintest.WithProjectRefs("B")),
				domaintest.Project(t, "B", nil, domaintest.WithProjectRefs("A")),
			},
			wantCycle: "A -> B -> A",
		},
		{
			name: "dangling reference ignored",
			projects: []*domain.Project{
				domaintest.Project(t, "A", nil, domaintest.WithProjectRefs("missing")),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			byID := make(map[domain.ProjectID]*domain.Project)
			for _, p := range tt.projects {
				byID[p.ID()] = p
			}

			err := domain.CheckProjectReferences(byID)
			if tt.wantCycle == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, domain.ErrProjectReferenceCycle)
			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, tt.wantCycle, zErr.Metadata()["cycle"])
		})
	}
}

func TestSolution_WithDocumentText(t *testing.T) {
	a := domaintest.Project(t, "A", []*domain.Document{domaintest.Doc("A/a.cs", "a")})
	b := domaintest.Project(t, "B", []*domain.Document{
		domaintest.Doc("B/b1.cs", "b1"),
		domaintest.Doc("B/b2.cs", "b2"),
	})
	s := domaintest.Solution(t, a, b)

	edited, err := s.WithDocumentText("B/b1.cs", &domain.SourceText{Text: "b1 edited", Encoding: "utf-8"})
	require.NoError(t, err)

	assert.NotEqual(t, s.Checksum, edited.Checksum)
	assert.Same(t, a, edited.Projects["A"], "untouched project is shared")
	assert.NotSame(t, b, edited.Projects["B"])
	assert.Same(t, b.Documents.ByID["B/b2.cs"], edited.Projects["B"].Documents.ByID["B/b2.cs"])
	assert.Equal(t, "b1", s.Projects["B"].Documents.ByID["B/b1.cs"].Text.Text, "base is not mutated")
	assert.Equal(t, edited.Checksum, domain.Recompute(edited))

	// The same edit from scratch converges on the same checksum.
	fresh := domaintest.Solution(t, a, domaintest.Project(t, "B", []*domain.Document{
		domaintest.Doc("B/b1.cs", "b1 edited"),
		domaintest.Doc("B/b2.cs", "b2"),
	}))
	assert.Equal(t, fresh.Checksum, edited.Checksum)

	same, err := s.WithDocumentText("A/a.cs", &domain.SourceText{Text: "a", Encoding: "utf-8"})
	require.NoError(t, err)
	assert.Same(t, s, same)

	_, err = s.WithDocumentText("nope.cs", &domain.SourceText{})
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestSolution_Cone(t *testing.T) {
	s := domaintest.Solution(t,
		domaintest.Project(t, "A", nil),
		domaintest.Project(t, "B", nil),
		domaintest.Project(t, "C", nil),
	)

	cone, err := s.Cone([]domain.ProjectID{"B", "A", "B"})
	require.NoError(t, err)

	assert.True(t, cone.IsNarrowed())
	assert.Equal(t, []domain.ProjectID{"A", "B"}, cone.State.Cone)
	assert.Len(t, cone.ProjectList.Entries, 2)
	assert.NotEqual(t, s.Checksum, cone.Checksum)
	assert.Equal(t, cone.Checksum, domain.Recompute(cone))
	assert.Same(t, s.Projects["C"], cone.Projects["C"])

	_, err = s.Cone([]domain.ProjectID{"Z"})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestCollectChecksums_MatchesAssets(t *testing.T) {
	s := domaintest.Solution(t,
		domaintest.Project(t, "A", []*domain.Document{domaintest.Doc("A/a.cs", "a")},
			domaintest.WithMetadataRefs("/lib/system.dll"),
			domaintest.WithAdditionalDocs(domaintest.Doc("A/readme.md", "readme")),
			domaintest.WithConfigDocs(domaintest.Doc("A/.editorconfig", "root = true")),
		),
		domaintest.Project(t, "B", []*domain.Document{domaintest.Doc("B/b.cs", "b")}, domaintest.WithProjectRefs("A")),
	)

	assets := domain.Assets(s)
	set := domain.CollectChecksums(s)

	assert.Len(t, set, len(assets))
	for c, a := range assets {
		assert.True(t, set.Contains(c))
		assert.Equal(t, c, domain.ChecksumOf(a), "asset %s is keyed by its own checksum", a.Kind())
	}
	assert.Equal(t, 4, s.DocumentCount())
}

func TestDivergence(t *testing.T) {
	a := domaintest.Project(t, "A", []*domain.Document{domaintest.Doc("A/a.cs", "a"), domaintest.Doc("A/b.cs", "b")})
	b := domaintest.Project(t, "B", nil)
	before := domaintest.Solution(t, a, b)

	edited, err := before.WithDocumentText("A/b.cs", &domain.SourceText{Text: "b2", Encoding: "utf-8"})
	require.NoError(t, err)
	after := domaintest.Solution(t,
		edited.Projects["A"],
		domaintest.Project(t, "B", nil, domaintest.WithOptimize()),
		domaintest.Project(t, "C", nil),
	)

	assert.Equal(t, []string{"A/b.cs", "B", "C"}, domain.Divergence(before, after))
	assert.Empty(t, domain.Divergence(after, after))
}

func TestHashedChecksums_SeesStaleLeaf(t *testing.T) {
	s := domaintest.Solution(t, domaintest.Project(t, "A", []*domain.Document{domaintest.Doc("A/a.cs", "a")}))
	assert.Equal(t, domain.CollectChecksums(s), domain.HashedChecksums(s))

	p := *s.Projects["A"]
	doc := *p.Documents.ByID["A/a.cs"]
	doc.Text = &domain.SourceText{Text: "stale"}
	p.Documents = domain.DocumentSet{List: p.Documents.List, ByID: map[domain.DocumentID]*domain.Document{"A/a.cs": &doc}}
	stale := *s
	stale.Projects = map[domain.ProjectID]*domain.Project{"A": &p}

	assert.Equal(t, domain.CollectChecksums(s), domain.CollectChecksums(&stale))
	assert.True(t, domain.HashedChecksums(&stale).Contains(domain.ChecksumOf(doc.Text)))
	assert.False(t, domain.HashedChecksums(&stale).Contains(s.Projects["A"].Documents.ByID["A/a.cs"].State.Text))
}
