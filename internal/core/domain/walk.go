package domain

import (
	"maps"
	"slices"
)

// CollectChecksums returns every checksum reachable from s.
// It reads checksums from the state objects and never hashes content.
func CollectChecksums(s *Solution) ChecksumSet {
	set := make(ChecksumSet)
	AddChecksums(set, s)
	return set
}

// AddChecksums adds every checksum reachable from s to set.
func AddChecksums(set ChecksumSet, s *Solution) {
	set.Add(s.Checksum)
	set.Add(s.State.Attributes)
	set.Add(s.State.Options)
	set.Add(s.State.Projects)
	set.Add(s.State.AnalyzerReferences)
	for _, c := range s.AnalyzerReferenceList.Checksums {
		set.Add(c)
	}
	for _, p := range s.Projects {
		addProjectChecksums(set, p)
	}
}

func addProjectChecksums(set ChecksumSet, p *Project) {
	set.Add(p.Checksum)
	st := p.State
	for _, c := range []Checksum{
		st.Attributes, st.CompilationOptions, st.ParseOptions,
		st.ProjectReferences, st.MetadataReferences, st.AnalyzerReferences,
		st.Documents, st.AdditionalDocuments, st.AnalyzerConfigDocuments,
	} {
		set.Add(c)
	}
	for _, list := range []*ChecksumList{p.ProjectReferenceList, p.MetadataReferenceList, p.AnalyzerReferenceList} {
		for _, c := range list.Checksums {
			set.Add(c)
		}
	}
	for _, docs := range p.documentSets() {
		for _, d := range docs.ByID {
			set.Add(d.Checksum)
			set.Add(d.State.Attributes)
			set.Add(d.State.Text)
		}
	}
}

// Assets returns every asset reachable from s keyed by checksum.
func Assets(s *Solution) map[Checksum]Asset {
	out := make(map[Checksum]Asset)
	out[s.Checksum] = s.State
	out[s.State.Attributes] = s.Attributes
	out[s.State.Options] = s.Options
	out[s.State.Projects] = s.ProjectList
	out[s.State.AnalyzerReferences] = s.AnalyzerReferenceList
	addList(out, s.AnalyzerReferenceList, s.AnalyzerReferences)
	for _, p := range s.Projects {
		ProjectAssets(out, p)
	}
	return out
}

// ProjectAssets adds every asset of p to out.
func ProjectAssets(out map[Checksum]Asset, p *Project) {
	st := p.State
	out[p.Checksum] = st
	out[st.Attributes] = p.Attributes
	out[st.CompilationOptions] = p.CompilationOptions
	out[st.ParseOptions] = p.ParseOptions
	out[st.ProjectReferences] = p.ProjectReferenceList
	out[st.MetadataReferences] = p.MetadataReferenceList
	out[st.AnalyzerReferences] = p.AnalyzerReferenceList
	out[st.Documents] = p.Documents.List
	out[st.AdditionalDocuments] = p.AdditionalDocuments.List
	out[st.AnalyzerConfigDocuments] = p.AnalyzerConfigDocuments.List
	addList(out, p.ProjectReferenceList, p.ProjectReferences)
	addList(out, p.MetadataReferenceList, p.MetadataReferences)
	addList(out, p.AnalyzerReferenceList, p.AnalyzerReferences)
	for _, docs := range p.documentSets() {
		for _, d := range docs.ByID {
			out[d.Checksum] = d.State
			out[d.State.Attributes] = d.Attributes
			out[d.State.Text] = d.Text
		}
	}
}

func addList[T Asset](out map[Checksum]Asset, list *ChecksumList, items []T) {
	for i, c := range list.Checksums {
		out[c] = items[i]
	}
}

// Recompute hashes s again from its leaf assets, ignoring every stored checksum.
// For a narrowed solution only the projects of the cone contribute to the root.
func Recompute(s *Solution) Checksum {
	projects := make(map[ProjectID]*Project, len(s.Projects))
	for id, p := range s.Projects {
		projects[id] = recomputeProject(p)
	}

	fresh := &Solution{
		Attributes:         s.Attributes,
		Options:            s.Options,
		AnalyzerReferences: s.AnalyzerReferences,
		Projects:           projects,
	}
	fresh.seal(s.State.Cone)
	return fresh.Checksum
}

func recomputeProject(p *Project) *Project {
	np := p.shallowCopy()
	np.Documents = recomputeDocuments(p.Documents)
	np.AdditionalDocuments = recomputeDocuments(p.AdditionalDocuments)
	np.AnalyzerConfigDocuments = recomputeDocuments(p.AnalyzerConfigDocuments)
	np.seal()
	return np
}

func recomputeDocuments(set DocumentSet) DocumentSet {
	byID := make(map[DocumentID]*Document, len(set.ByID))
	for _, id := range slices.Sorted(maps.Keys(set.ByID)) {
		d := set.ByID[id]
		byID[id] = NewDocument(d.Attributes, d.Text)
	}
	return documentSetOf(byID)
}

// HashedChecksums returns the checksum of every asset reachable from s, hashed
// from the asset itself. Unlike CollectChecksums it sees a leaf whose content
// no longer matches the state that names it.
func HashedChecksums(s *Solution) ChecksumSet {
	set := make(ChecksumSet)
	for _, a := range Assets(s) {
		set.Add(ChecksumOf(a))
	}
	return set
}

// Divergence names the projects and documents whose hashed content differs
// between got and want, sorted. A project is named when it is missing on one
// side or when its own assets differ; a document when its attributes or text do.
func Divergence(got, want *Solution) []string {
	var ids []string
	for _, id := range slices.Sorted(maps.Keys(want.Projects)) {
		gp, ok := got.Projects[id]
		if !ok {
			ids = append(ids, string(id))
			continue
		}
		ids = append(ids, projectDivergence(gp, want.Projects[id])...)
	}
	for id := range got.Projects {
		if _, ok := want.Projects[id]; !ok {
			ids = append(ids, string(id))
		}
	}
	slices.Sort(ids)
	return ids
}

func projectDivergence(got, want *Project) []string {
	gotDocs, wantDocs := documentsByID(got), documentsByID(want)

	var ids []string
	for id, wd := range wantDocs {
		gd, ok := gotDocs[id]
		if !ok || ChecksumOf(gd.Attributes) != ChecksumOf(wd.Attributes) || ChecksumOf(gd.Text) != ChecksumOf(wd.Text) {
			ids = append(ids, string(id))
		}
	}
	for id := range gotDocs {
		if _, ok := wantDocs[id]; !ok {
			ids = append(ids, string(id))
		}
	}
	if len(ids) > 0 {
		return ids
	}

	if !maps.Equal(hashedProjectAssets(got), hashedProjectAssets(want)) {
		return []string{string(want.ID())}
	}
	return nil
}

func documentsByID(p *Project) map[DocumentID]*Document {
	out := make(map[DocumentID]*Document)
	for _, set := range p.documentSets() {
		maps.Copy(out, set.ByID)
	}
	return out
}

func hashedProjectAssets(p *Project) ChecksumSet {
	assets := make(map[Checksum]Asset)
	ProjectAssets(assets, p)
	set := make(ChecksumSet)
	for _, a := range assets {
		set.Add(ChecksumOf(a))
	}
	return set
}
