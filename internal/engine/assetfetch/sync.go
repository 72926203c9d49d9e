package assetfetch

import (
	"context"

	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// SynchronizeSolution pulls every asset reachable from root into the cache.
// Each level of the tree is fetched with one request per asset family.
func (f *Fetcher) SynchronizeSolution(ctx context.Context, root domain.Checksum) error {
	ctx, span := f.tracer.Start(ctx, "assets.sync_solution", ports.WithAttribute("checksum", root.String()))
	defer span.End()

	scope := domain.AssetScope{}
	state, err := GetAsset[*domain.SolutionState](ctx, f, scope, root)
	if err != nil {
		span.RecordError(err)
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := f.GetAssets(gctx, scope, []domain.Checksum{state.Attributes, state.Options})
		return err
	})
	g.Go(func() error {
		return f.syncReferenceLists(gctx, scope, []domain.Checksum{state.AnalyzerReferences})
	})
	g.Go(func() error {
		list, err := GetAsset[*domain.ProjectList](gctx, f, scope, state.Projects)
		if err != nil {
			return err
		}
		return f.SynchronizeProjects(gctx, list.Entries)
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// SynchronizeProjects pulls the asset trees of the given projects into the cache.
// Small batches are synchronized per project with a scoped hint, larger ones in one wide pass.
func (f *Fetcher) SynchronizeProjects(ctx context.Context, entries []domain.ProjectEntry) error {
	if len(entries) == 0 {
		return nil
	}

	if len(entries) <= f.projectSyncThreshold {
		g, gctx := errgroup.WithContext(ctx)
		for _, e := range entries {
			g.Go(func() error {
				return f.SynchronizeProject(gctx, e.ID, e.Checksum)
			})
		}
		return g.Wait()
	}

	ctx, span := f.tracer.Start(ctx, "assets.sync_projects", ports.WithAttribute("count", len(entries)))
	defer span.End()

	checksums := make([]domain.Checksum, len(entries))
	for i, e := range entries {
		checksums[i] = e.Checksum
	}
	if err := f.syncProjects(ctx, domain.AssetScope{}, checksums); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// SynchronizeProject pulls the asset tree of one project into the cache.
func (f *Fetcher) SynchronizeProject(ctx context.Context, id domain.ProjectID, c domain.Checksum) error {
	ctx, span := f.tracer.Start(ctx, "assets.sync_project",
		ports.WithAttribute("project", string(id)),
		ports.WithAttribute("checksum", c.String()),
	)
	defer span.End()

	if err := f.syncProjects(ctx, domain.AssetScope{ProjectID: id}, []domain.Checksum{c}); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (f *Fetcher) syncProjects(ctx context.Context, scope domain.AssetScope, checksums []domain.Checksum) error {
	states, err := GetAssetsOf[*domain.ProjectState](ctx, f, scope, checksums)
	if err != nil {
		return err
	}

	var info, refLists, docLists []domain.Checksum
	for _, st := range states {
		info = append(info, st.Attributes, st.CompilationOptions, st.ParseOptions)
		refLists = append(refLists, st.ProjectReferences, st.MetadataReferences, st.AnalyzerReferences)
		docLists = append(docLists, st.Documents, st.AdditionalDocuments, st.AnalyzerConfigDocuments)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := f.GetAssets(gctx, scope, info)
		return err
	})
	g.Go(func() error {
		return f.syncReferenceLists(gctx, scope, refLists)
	})
	g.Go(func() error {
		return f.syncDocumentLists(gctx, scope, docLists)
	})
	return g.Wait()
}

func (f *Fetcher) syncReferenceLists(ctx context.Context, scope domain.AssetScope, checksums []domain.Checksum) error {
	lists, err := GetAssetsOf[*domain.ChecksumList](ctx, f, scope, checksums)
	if err != nil {
		return err
	}

	var items []domain.Checksum
	for _, l := range lists {
		items = append(items, l.Checksums...)
	}
	if len(items) == 0 {
		return nil
	}
	_, err = f.GetAssets(ctx, scope, items)
	return err
}

func (f *Fetcher) syncDocumentLists(ctx context.Context, scope domain.AssetScope, checksums []domain.Checksum) error {
	lists, err := GetAssetsOf[*domain.DocumentList](ctx, f, scope, checksums)
	if err != nil {
		return err
	}

	var stateChecksums []domain.Checksum
	for _, l := range lists {
		for _, e := range l.Entries {
			stateChecksums = append(stateChecksums, e.Checksum)
		}
	}
	return f.SynchronizeDocuments(ctx, scope, stateChecksums)
}

// SynchronizeDocuments pulls the given document states and their attributes and text into the cache.
func (f *Fetcher) SynchronizeDocuments(ctx context.Context, scope domain.AssetScope, checksums []domain.Checksum) error {
	if len(checksums) == 0 {
		return nil
	}
	states, err := GetAssetsOf[*domain.DocumentState](ctx, f, scope, checksums)
	if err != nil {
		return err
	}

	leaves := make([]domain.Checksum, 0, 2*len(states))
	for _, st := range states {
		leaves = append(leaves, st.Attributes, st.Text)
	}
	_, err = f.GetAssets(ctx, scope, leaves)
	return err
}
