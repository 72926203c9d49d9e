package snapshot

import (
	"context"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/engine/assetfetch"
	"go.trai.ch/zerr"
)

func (b *Builder) buildIncremental(ctx context.Context, base *domain.Solution, target domain.Checksum) (*domain.Solution, error) {
	scope := domain.AssetScope{}
	state, err := assetfetch.GetAsset[*domain.SolutionState](ctx, b.fetcher, scope, target)
	if err != nil {
		return nil, err
	}

	s := &domain.Solution{
		Checksum:              target,
		State:                 state,
		Attributes:            base.Attributes,
		Options:               base.Options,
		AnalyzerReferenceList: base.AnalyzerReferenceList,
		AnalyzerReferences:    base.AnalyzerReferences,
		ProjectList:           base.ProjectList,
		Projects:              base.Projects,
	}

	if state.Attributes != base.State.Attributes {
		attrs, err := assetfetch.GetAsset[*domain.SolutionAttributes](ctx, b.fetcher, scope, state.Attributes)
		if err != nil {
			return nil, err
		}
		if attrs.ID != base.Attributes.ID || attrs.FilePath != base.Attributes.FilePath {
			err := zerr.With(zerr.Wrap(domain.ErrIdentityChanged, "solution identity changed"), "solution", string(base.Attributes.ID))
			return nil, zerr.With(err, "target", string(attrs.ID))
		}
		s.Attributes = attrs
	}

	if state.Options != base.State.Options {
		if s.Options, err = assetfetch.GetAsset[*domain.SolutionOptions](ctx, b.fetcher, scope, state.Options); err != nil {
			return nil, err
		}
	}

	if state.AnalyzerReferences != base.State.AnalyzerReferences {
		s.AnalyzerReferenceList, s.AnalyzerReferences, err = loadReferences[*domain.AnalyzerReference](ctx, b.fetcher, scope, state.AnalyzerReferences)
		if err != nil {
			return nil, err
		}
	}

	// A full target on top of a narrowed base may list the same projects while base holds more.
	if state.Projects != base.State.Projects || (base.IsNarrowed() && !state.IsNarrowed()) {
		if s.ProjectList, s.Projects, err = b.updateProjects(ctx, base, state); err != nil {
			return nil, err
		}
	}

	if state.IsNarrowed() {
		if err := checkNarrowed(base, s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

type projectChange struct {
	base  *domain.Project
	entry domain.ProjectEntry
}

// updateProjects applies the difference between the projects of base and the project list of state.
// Project references of changed projects are dropped first and restored last, one project at a time,
// so that every intermediate reference graph is checked for cycles.
func (b *Builder) updateProjects(
	ctx context.Context,
	base *domain.Solution,
	state *domain.SolutionState,
) (*domain.ProjectList, map[domain.ProjectID]*domain.Project, error) {
	list, err := assetfetch.GetAsset[*domain.ProjectList](ctx, b.fetcher, domain.AssetScope{}, state.Projects)
	if err != nil {
		return nil, nil, err
	}

	var (
		added   []domain.ProjectEntry
		changed []projectChange
		removed []domain.ProjectID
	)
	target := list.Map()
	for _, e := range list.Entries {
		bp, ok := base.Projects[e.ID]
		switch {
		case !ok:
			added = append(added, e)
		case bp.Checksum != e.Checksum:
			changed = append(changed, projectChange{base: bp, entry: e})
		}
	}
	// A narrowed target only excludes projects, it never removes them.
	if !state.IsNarrowed() {
		for _, id := range slices.Sorted(maps.Keys(base.Projects)) {
			if _, ok := target[id]; !ok {
				removed = append(removed, id)
			}
		}
	}

	working := maps.Clone(base.Projects)
	for _, c := range changed {
		working[c.entry.ID] = withoutProjectReferences(c.base)
	}
	for _, id := range removed {
		delete(working, id)
	}

	if len(added) > 0 {
		if err := b.fetcher.SynchronizeProjects(ctx, added); err != nil {
			return nil, nil, err
		}
		for _, e := range added {
			p, err := b.loadProject(ctx, e.ID, e.Checksum)
			if err != nil {
				return nil, nil, err
			}
			working[e.ID] = p
		}
		if err := domain.CheckProjectReferences(working); err != nil {
			return nil, nil, err
		}
	}

	restored := make(map[domain.ProjectID][]*domain.ProjectReference, len(changed))
	for _, c := range changed {
		p, refs, err := b.updateProject(ctx, c.base, c.entry)
		if err != nil {
			return nil, nil, err
		}
		working[c.entry.ID] = p
		restored[c.entry.ID] = refs
	}

	for _, c := range changed {
		working[c.entry.ID].ProjectReferences = restored[c.entry.ID]
		if err := domain.CheckProjectReferences(working); err != nil {
			return nil, nil, err
		}
	}

	return list, working, nil
}

func withoutProjectReferences(p *domain.Project) *domain.Project {
	cp := *p
	cp.ProjectReferences = nil
	return &cp
}

// updateProject derives the changed project from base, fetching only the fields whose checksum differs.
// The returned project has no project references; they are returned separately.
func (b *Builder) updateProject(
	ctx context.Context,
	base *domain.Project,
	e domain.ProjectEntry,
) (*domain.Project, []*domain.ProjectReference, error) {
	scope := domain.AssetScope{ProjectID: e.ID}
	st, err := assetfetch.GetAsset[*domain.ProjectState](ctx, b.fetcher, scope, e.Checksum)
	if err != nil {
		return nil, nil, err
	}
	old := base.State

	p := *base
	p.Checksum = e.Checksum
	p.State = st
	refs := base.ProjectReferences

	if st.Attributes != old.Attributes {
		attrs, err := assetfetch.GetAsset[*domain.ProjectAttributes](ctx, b.fetcher, scope, st.Attributes)
		if err != nil {
			return nil, nil, err
		}
		if attrs.ID != base.Attributes.ID {
			err := zerr.With(zerr.Wrap(domain.ErrIdentityChanged, "project identity changed"), "project", string(base.Attributes.ID))
			return nil, nil, zerr.With(err, "target", string(attrs.ID))
		}
		p.Attributes = attrs
	}
	if st.CompilationOptions != old.CompilationOptions {
		if p.CompilationOptions, err = assetfetch.GetAsset[*domain.CompilationOptions](ctx, b.fetcher, scope, st.CompilationOptions); err != nil {
			return nil, nil, err
		}
	}
	if st.ParseOptions != old.ParseOptions {
		if p.ParseOptions, err = assetfetch.GetAsset[*domain.ParseOptions](ctx, b.fetcher, scope, st.ParseOptions); err != nil {
			return nil, nil, err
		}
	}
	if st.ProjectReferences != old.ProjectReferences {
		if p.ProjectReferenceList, refs, err = loadReferences[*domain.ProjectReference](ctx, b.fetcher, scope, st.ProjectReferences); err != nil {
			return nil, nil, err
		}
	}
	if st.MetadataReferences != old.MetadataReferences {
		if p.MetadataReferenceList, p.MetadataReferences, err = loadReferences[*domain.MetadataReference](ctx, b.fetcher, scope, st.MetadataReferences); err != nil {
			return nil, nil, err
		}
	}
	if st.AnalyzerReferences != old.AnalyzerReferences {
		if p.AnalyzerReferenceList, p.AnalyzerReferences, err = loadReferences[*domain.AnalyzerReference](ctx, b.fetcher, scope, st.AnalyzerReferences); err != nil {
			return nil, nil, err
		}
	}

	if err := b.updateDocuments(ctx, &p, old); err != nil {
		return nil, nil, err
	}

	p.ProjectReferences = nil
	return &p, refs, nil
}

// updateDocuments refreshes the three document collections of p whose list checksum changed.
// When more documents were added or changed than the bulk threshold allows, the whole project
// is synchronized in one pass first.
func (b *Builder) updateDocuments(ctx context.Context, p *domain.Project, old *domain.ProjectState) error {
	scope := domain.AssetScope{ProjectID: p.ID()}
	collections := []struct {
		set      *domain.DocumentSet
		previous domain.Checksum
		current  domain.Checksum
	}{
		{&p.Documents, old.Documents, p.State.Documents},
		{&p.AdditionalDocuments, old.AdditionalDocuments, p.State.AdditionalDocuments},
		{&p.AnalyzerConfigDocuments, old.AnalyzerConfigDocuments, p.State.AnalyzerConfigDocuments},
	}

	dirty := 0
	for _, c := range collections {
		if c.previous == c.current {
			continue
		}
		list, err := assetfetch.GetAsset[*domain.DocumentList](ctx, b.fetcher, scope, c.current)
		if err != nil {
			return err
		}
		for _, e := range list.Entries {
			if d, ok := c.set.ByID[e.ID]; !ok || d.Checksum != e.Checksum {
				dirty++
			}
		}
	}
	if dirty > b.documentBulkThreshold {
		if err := b.fetcher.SynchronizeProject(ctx, p.ID(), p.Checksum); err != nil {
			return err
		}
	}

	for _, c := range collections {
		if c.previous == c.current {
			continue
		}
		set, err := b.loadDocuments(ctx, scope, *c.set, c.current)
		if err != nil {
			return err
		}
		*c.set = set
	}
	return nil
}

// checkNarrowed asserts that a narrowed result kept every project of base and contains its whole cone.
func checkNarrowed(base, s *domain.Solution) error {
	var lost []string
	for id := range base.Projects {
		if _, ok := s.Projects[id]; !ok {
			lost = append(lost, string(id))
		}
	}

	listed := s.ProjectList.Map()
	for _, id := range s.State.Cone {
		if _, ok := listed[id]; !ok {
			lost = append(lost, string(id))
		}
	}

	if len(lost) == 0 {
		return nil
	}
	slices.Sort(lost)
	err := zerr.With(zerr.Wrap(domain.ErrNarrowedSyncLostProject, "narrowed sync lost projects"), "checksum", s.Checksum.String())
	return zerr.With(err, "projects", strings.Join(lost, ","))
}
