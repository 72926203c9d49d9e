package domain

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Solution is an immutable materialized snapshot of a workspace.
// Unchanged projects and documents are shared by pointer between snapshots
// derived from one another. Nothing reachable from a Solution may be mutated.
type Solution struct {
	// Checksum is the root checksum the solution was requested or built under.
	Checksum Checksum
	State    *SolutionState

	Attributes            *SolutionAttributes
	Options               *SolutionOptions
	AnalyzerReferenceList *ChecksumList
	AnalyzerReferences    []*AnalyzerReference
	ProjectList           *ProjectList

	// Projects may hold projects outside ProjectList when the solution was
	// produced by a narrowed sync on top of a larger base.
	Projects map[ProjectID]*Project
}

// Project is an immutable materialized project.
type Project struct {
	Checksum Checksum
	State    *ProjectState

	Attributes         *ProjectAttributes
	CompilationOptions *CompilationOptions
	ParseOptions       *ParseOptions

	ProjectReferenceList  *ChecksumList
	ProjectReferences     []*ProjectReference
	MetadataReferenceList *ChecksumList
	MetadataReferences    []*MetadataReference
	AnalyzerReferenceList *ChecksumList
	AnalyzerReferences    []*AnalyzerReference

	Documents               DocumentSet
	AdditionalDocuments     DocumentSet
	AnalyzerConfigDocuments DocumentSet
}

// ID returns the project id.
func (p *Project) ID() ProjectID {
	return p.State.ID
}

// DocumentSet is one of the three document collections of a project.
type DocumentSet struct {
	List *DocumentList
	ByID map[DocumentID]*Document
}

// Len returns the number of documents in the set.
func (s DocumentSet) Len() int {
	return len(s.ByID)
}

// Document is an immutable materialized document.
type Document struct {
	Checksum   Checksum
	State      *DocumentState
	Attributes *DocumentAttributes
	Text       *SourceText
}

// ID returns the document id.
func (d *Document) ID() DocumentID {
	return d.State.ID
}

// NewDocument assembles a document from its leaf assets.
func NewDocument(attrs *DocumentAttributes, text *SourceText) *Document {
	state := &DocumentState{
		ID:         attrs.ID,
		Attributes: ChecksumOf(attrs),
		Text:       ChecksumOf(text),
	}
	return &Document{
		Checksum:   ChecksumOf(state),
		State:      state,
		Attributes: attrs,
		Text:       text,
	}
}

// NewDocumentSet builds a collection from documents, rejecting duplicate ids.
func NewDocumentSet(docs []*Document) (DocumentSet, error) {
	byID := make(map[DocumentID]*Document, len(docs))
	for _, d := range docs {
		if _, ok := byID[d.ID()]; ok {
			return DocumentSet{}, zerr.With(zerr.Wrap(ErrDuplicateDocumentID, "invalid document collection"), "document", string(d.ID()))
		}
		byID[d.ID()] = d
	}
	return documentSetOf(byID), nil
}

func documentSetOf(byID map[DocumentID]*Document) DocumentSet {
	list := &DocumentList{Entries: make([]DocumentEntry, 0, len(byID))}
	for _, id := range slices.Sorted(maps.Keys(byID)) {
		list.Entries = append(list.Entries, DocumentEntry{ID: id, Checksum: byID[id].Checksum})
	}
	return DocumentSet{List: list, ByID: byID}
}

// ProjectContent lists the leaf assets a project is assembled from.
type ProjectContent struct {
	Attributes              *ProjectAttributes
	CompilationOptions      *CompilationOptions
	ParseOptions            *ParseOptions
	ProjectReferences       []*ProjectReference
	MetadataReferences      []*MetadataReference
	AnalyzerReferences      []*AnalyzerReference
	Documents               []*Document
	AdditionalDocuments     []*Document
	AnalyzerConfigDocuments []*Document
}

// NewProject assembles a project and computes its checksums.
func NewProject(c ProjectContent) (*Project, error) {
	docs, err := NewDocumentSet(c.Documents)
	if err != nil {
		return nil, err
	}
	additional, err := NewDocumentSet(c.AdditionalDocuments)
	if err != nil {
		return nil, err
	}
	config, err := NewDocumentSet(c.AnalyzerConfigDocuments)
	if err != nil {
		return nil, err
	}

	p := &Project{
		Attributes:              c.Attributes,
		CompilationOptions:      c.CompilationOptions,
		ParseOptions:            c.ParseOptions,
		ProjectReferences:       c.ProjectReferences,
		MetadataReferences:      c.MetadataReferences,
		AnalyzerReferences:      c.AnalyzerReferences,
		Documents:               docs,
		AdditionalDocuments:     additional,
		AnalyzerConfigDocuments: config,
	}
	p.seal()
	return p, nil
}

// seal recomputes every checksum of p from its leaf assets and document sets.
func (p *Project) seal() {
	p.ProjectReferenceList = checksumListOf(p.ProjectReferences)
	p.MetadataReferenceList = checksumListOf(p.MetadataReferences)
	p.AnalyzerReferenceList = checksumListOf(p.AnalyzerReferences)

	p.State = &ProjectState{
		ID:                      p.Attributes.ID,
		Attributes:              ChecksumOf(p.Attributes),
		CompilationOptions:      ChecksumOf(p.CompilationOptions),
		ParseOptions:            ChecksumOf(p.ParseOptions),
		ProjectReferences:       ChecksumOf(p.ProjectReferenceList),
		MetadataReferences:      ChecksumOf(p.MetadataReferenceList),
		AnalyzerReferences:      ChecksumOf(p.AnalyzerReferenceList),
		Documents:               ChecksumOf(p.Documents.List),
		AdditionalDocuments:     ChecksumOf(p.AdditionalDocuments.List),
		AnalyzerConfigDocuments: ChecksumOf(p.AnalyzerConfigDocuments.List),
	}
	p.Checksum = ChecksumOf(p.State)
}

func checksumListOf[T Asset](items []T) *ChecksumList {
	list := &ChecksumList{Checksums: make([]Checksum, len(items))}
	for i, item := range items {
		list.Checksums[i] = ChecksumOf(item)
	}
	return list
}

// NewSolution assembles a full solution and computes its root checksum.
func NewSolution(
	attrs *SolutionAttributes,
	options *SolutionOptions,
	analyzers []*AnalyzerReference,
	projects []*Project,
) (*Solution, error) {
	byID := make(map[ProjectID]*Project, len(projects))
	for _, p := range projects {
		if _, ok := byID[p.ID()]; ok {
			return nil, zerr.With(zerr.Wrap(ErrDuplicateProjectID, "invalid solution"), "project", string(p.ID()))
		}
		byID[p.ID()] = p
	}
	if err := CheckProjectReferences(byID); err != nil {
		return nil, err
	}

	s := &Solution{
		Attributes:         attrs,
		Options:            options,
		AnalyzerReferences: analyzers,
		Projects:           byID,
	}
	s.seal(nil)
	return s, nil
}

// seal recomputes the solution state over the given cone, or every project when cone is empty.
func (s *Solution) seal(cone []ProjectID) {
	s.AnalyzerReferenceList = checksumListOf(s.AnalyzerReferences)
	s.ProjectList = projectListOf(s.Projects, cone)
	s.State = &SolutionState{
		Attributes:         ChecksumOf(s.Attributes),
		Options:            ChecksumOf(s.Options),
		Projects:           ChecksumOf(s.ProjectList),
		AnalyzerReferences: ChecksumOf(s.AnalyzerReferenceList),
		Cone:               cone,
	}
	s.Checksum = ChecksumOf(s.State)
}

func projectListOf(projects map[ProjectID]*Project, cone []ProjectID) *ProjectList {
	ids := cone
	if len(ids) == 0 {
		ids = slices.Sorted(maps.Keys(projects))
	}
	list := &ProjectList{Entries: make([]ProjectEntry, 0, len(ids))}
	for _, id := range ids {
		if p, ok := projects[id]; ok {
			list.Entries = append(list.Entries, ProjectEntry{ID: id, Checksum: p.Checksum})
		}
	}
	return list
}

// IsNarrowed reports whether the solution was requested as a cone of projects.
func (s *Solution) IsNarrowed() bool {
	return s.State.IsNarrowed()
}

// Cone returns a narrowed view of the solution restricted to ids.
// The view shares every project with s and has its own root checksum.
func (s *Solution) Cone(ids []ProjectID) (*Solution, error) {
	cone := slices.Clone(ids)
	slices.Sort(cone)
	cone = slices.Compact(cone)
	for _, id := range cone {
		if _, ok := s.Projects[id]; !ok {
			return nil, zerr.With(zerr.Wrap(ErrProjectNotFound, "invalid cone"), "project", string(id))
		}
	}

	view := &Solution{
		Attributes:         s.Attributes,
		Options:            s.Options,
		AnalyzerReferences: s.AnalyzerReferences,
		Projects:           s.Projects,
	}
	view.seal(cone)
	return view, nil
}

// Project returns the project with the given id.
func (s *Solution) Project(id ProjectID) (*Project, bool) {
	p, ok := s.Projects[id]
	return p, ok
}

// FindDocument locates a document in any collection of any project.
func (s *Solution) FindDocument(id DocumentID) (*Project, *Document, bool) {
	for _, p := range s.Projects {
		for _, set := range p.documentSets() {
			if d, ok := set.ByID[id]; ok {
				return p, d, true
			}
		}
	}
	return nil, nil, false
}

// DocumentCount returns the number of documents across all collections of all projects.
func (s *Solution) DocumentCount() int {
	n := 0
	for _, p := range s.Projects {
		for _, set := range p.documentSets() {
			n += set.Len()
		}
	}
	return n
}

// WithDocumentText returns a new solution in which the document's text is replaced.
// Every project and document other than the edited ones is shared with s.
func (s *Solution) WithDocumentText(id DocumentID, text *SourceText) (*Solution, error) {
	p, d, ok := s.FindDocument(id)
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrDocumentNotFound, "cannot edit document"), "document", string(id))
	}

	edited := NewDocument(d.Attributes, text)
	if edited.Checksum == d.Checksum {
		return s, nil
	}

	np := p.shallowCopy()
	for _, set := range []*DocumentSet{&np.Documents, &np.AdditionalDocuments, &np.AnalyzerConfigDocuments} {
		if _, ok := set.ByID[id]; ok {
			byID := maps.Clone(set.ByID)
			byID[id] = edited
			*set = documentSetOf(byID)
		}
	}
	np.seal()

	projects := maps.Clone(s.Projects)
	projects[np.ID()] = np

	ns := &Solution{
		Attributes:         s.Attributes,
		Options:            s.Options,
		AnalyzerReferences: s.AnalyzerReferences,
		Projects:           projects,
	}
	ns.seal(s.State.Cone)
	return ns, nil
}

func (p *Project) shallowCopy() *Project {
	cp := *p
	return &cp
}

func (p *Project) documentSets() []DocumentSet {
	return []DocumentSet{p.Documents, p.AdditionalDocuments, p.AnalyzerConfigDocuments}
}

// CheckProjectReferences reports a cycle among the project references of projects.
// References to projects outside the map are ignored.
func CheckProjectReferences(projects map[ProjectID]*Project) error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[ProjectID]int, len(projects))

	var visit func(id ProjectID, path []ProjectID) error
	visit = func(id ProjectID, path []ProjectID) error {
		state[id] = visiting
		path = append(path, id)
		for _, ref := range projects[id].ProjectReferences {
			if _, ok := projects[ref.ProjectID]; !ok {
				continue
			}
			switch state[ref.ProjectID] {
			case visiting:
				return cycleError(path, ref.ProjectID)
			case unvisited:
				if err := visit(ref.ProjectID, path); err != nil {
					return err
				}
			}
		}
		state[id] = done
		return nil
	}

	for _, id := range slices.Sorted(maps.Keys(projects)) {
		if state[id] == unvisited {
			if err := visit(id, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

func cycleError(path []ProjectID, dep ProjectID) error {
	start := slices.Index(path, dep)
	parts := make([]string, 0, len(path)-start+1)
	for _, id := range path[start:] {
		parts = append(parts, string(id))
	}
	parts = append(parts, string(dep))
	return zerr.With(zerr.Wrap(ErrProjectReferenceCycle, "invalid project references"), "cycle", strings.Join(parts, " -> "))
}
