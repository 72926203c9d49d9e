package snapshot

import (
	"context"

	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/engine/assetfetch"
)

// loadSolution materializes the solution for root. Every asset is expected to be cached already.
func (b *Builder) loadSolution(ctx context.Context, root domain.Checksum) (*domain.Solution, error) {
	scope := domain.AssetScope{}
	state, err := assetfetch.GetAsset[*domain.SolutionState](ctx, b.fetcher, scope, root)
	if err != nil {
		return nil, err
	}
	attrs, err := assetfetch.GetAsset[*domain.SolutionAttributes](ctx, b.fetcher, scope, state.Attributes)
	if err != nil {
		return nil, err
	}
	options, err := assetfetch.GetAsset[*domain.SolutionOptions](ctx, b.fetcher, scope, state.Options)
	if err != nil {
		return nil, err
	}
	analyzerList, analyzers, err := loadReferences[*domain.AnalyzerReference](ctx, b.fetcher, scope, state.AnalyzerReferences)
	if err != nil {
		return nil, err
	}
	list, err := assetfetch.GetAsset[*domain.ProjectList](ctx, b.fetcher, scope, state.Projects)
	if err != nil {
		return nil, err
	}

	projects := make(map[domain.ProjectID]*domain.Project, len(list.Entries))
	for _, e := range list.Entries {
		p, err := b.loadProject(ctx, e.ID, e.Checksum)
		if err != nil {
			return nil, err
		}
		projects[e.ID] = p
	}

	return &domain.Solution{
		Checksum:              root,
		State:                 state,
		Attributes:            attrs,
		Options:               options,
		AnalyzerReferenceList: analyzerList,
		AnalyzerReferences:    analyzers,
		ProjectList:           list,
		Projects:              projects,
	}, nil
}

func (b *Builder) loadProject(ctx context.Context, id domain.ProjectID, c domain.Checksum) (*domain.Project, error) {
	scope := domain.AssetScope{ProjectID: id}
	st, err := assetfetch.GetAsset[*domain.ProjectState](ctx, b.fetcher, scope, c)
	if err != nil {
		return nil, err
	}

	p := &domain.Project{Checksum: c, State: st}
	if p.Attributes, err = assetfetch.GetAsset[*domain.ProjectAttributes](ctx, b.fetcher, scope, st.Attributes); err != nil {
		return nil, err
	}
	if p.CompilationOptions, err = assetfetch.GetAsset[*domain.CompilationOptions](ctx, b.fetcher, scope, st.CompilationOptions); err != nil {
		return nil, err
	}
	if p.ParseOptions, err = assetfetch.GetAsset[*domain.ParseOptions](ctx, b.fetcher, scope, st.ParseOptions); err != nil {
		return nil, err
	}
	if p.ProjectReferenceList, p.ProjectReferences, err = loadReferences[*domain.ProjectReference](ctx, b.fetcher, scope, st.ProjectReferences); err != nil {
		return nil, err
	}
	if p.MetadataReferenceList, p.MetadataReferences, err = loadReferences[*domain.MetadataReference](ctx, b.fetcher, scope, st.MetadataReferences); err != nil {
		return nil, err
	}
	if p.AnalyzerReferenceList, p.AnalyzerReferences, err = loadReferences[*domain.AnalyzerReference](ctx, b.fetcher, scope, st.AnalyzerReferences); err != nil {
		return nil, err
	}
	if p.Documents, err = b.loadDocuments(ctx, scope, domain.DocumentSet{}, st.Documents); err != nil {
		return nil, err
	}
	if p.AdditionalDocuments, err = b.loadDocuments(ctx, scope, domain.DocumentSet{}, st.AdditionalDocuments); err != nil {
		return nil, err
	}
	if p.AnalyzerConfigDocuments, err = b.loadDocuments(ctx, scope, domain.DocumentSet{}, st.AnalyzerConfigDocuments); err != nil {
		return nil, err
	}
	return p, nil
}

// loadReferences returns the checksum list at c and its items in list order.
func loadReferences[T domain.Asset](
	ctx context.Context,
	f *assetfetch.Fetcher,
	scope domain.AssetScope,
	c domain.Checksum,
) (*domain.ChecksumList, []T, error) {
	list, err := assetfetch.GetAsset[*domain.ChecksumList](ctx, f, scope, c)
	if err != nil {
		return nil, nil, err
	}
	items, err := assetfetch.GetAssetsOf[T](ctx, f, scope, list.Checksums)
	if err != nil {
		return nil, nil, err
	}
	out := make([]T, len(list.Checksums))
	for i, item := range list.Checksums {
		out[i] = items[item]
	}
	return list, out, nil
}

// loadDocuments materializes the document list at c, reusing every document of old whose checksum is unchanged.
// For changed documents the attributes or text of the old document are reused when their checksum matches.
func (b *Builder) loadDocuments(
	ctx context.Context,
	scope domain.AssetScope,
	old domain.DocumentSet,
	c domain.Checksum,
) (domain.DocumentSet, error) {
	list, err := assetfetch.GetAsset[*domain.DocumentList](ctx, b.fetcher, scope, c)
	if err != nil {
		return domain.DocumentSet{}, err
	}

	byID := make(map[domain.DocumentID]*domain.Document, len(list.Entries))
	var pending []domain.Checksum
	for _, e := range list.Entries {
		if d, ok := old.ByID[e.ID]; ok && d.Checksum == e.Checksum {
			byID[e.ID] = d
			continue
		}
		pending = append(pending, e.Checksum)
	}
	if len(pending) == 0 {
		return domain.DocumentSet{List: list, ByID: byID}, nil
	}

	states, err := assetfetch.GetAssetsOf[*domain.DocumentState](ctx, b.fetcher, scope, pending)
	if err != nil {
		return domain.DocumentSet{}, err
	}

	var leaves []domain.Checksum
	for _, st := range states {
		prev := old.ByID[st.ID]
		if prev == nil || prev.State.Attributes != st.Attributes {
			leaves = append(leaves, st.Attributes)
		}
		if prev == nil || prev.State.Text != st.Text {
			leaves = append(leaves, st.Text)
		}
	}
	assets, err := b.fetcher.GetAssets(ctx, scope, leaves)
	if err != nil {
		return domain.DocumentSet{}, err
	}

	for sc, st := range states {
		d := &domain.Document{Checksum: sc, State: st}
		if prev := old.ByID[st.ID]; prev != nil {
			d.Attributes = prev.Attributes
			d.Text = prev.Text
		}
		if a, ok := assets[st.Attributes]; ok {
			if d.Attributes, err = assetfetch.As[*domain.DocumentAttributes](st.Attributes, a); err != nil {
				return domain.DocumentSet{}, err
			}
		}
		if a, ok := assets[st.Text]; ok {
			if d.Text, err = assetfetch.As[*domain.SourceText](st.Text, a); err != nil {
				return domain.DocumentSet{}, err
			}
		}
		byID[st.ID] = d
	}
	return domain.DocumentSet{List: list, ByID: byID}, nil
}
