package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// AssetKind tags every cacheable object in a solution tree.
type AssetKind uint8

// Asset kinds. The numeric values are part of the checksum input and must not change.
const (
	KindUnknown AssetKind = iota
	KindSolutionState
	KindSolutionAttributes
	KindSolutionOptions
	KindProjectList
	KindProjectState
	KindProjectAttributes
	KindCompilationOptions
	KindParseOptions
	KindChecksumList
	KindProjectReference
	KindMetadataReference
	KindAnalyzerReference
	KindDocumentList
	KindDocumentState
	KindDocumentAttributes
	KindSourceText
)

var kindNames = [...]string{
	KindUnknown:            "unknown",
	KindSolutionState:      "solution_state",
	KindSolutionAttributes: "solution_attributes",
	KindSolutionOptions:    "solution_options",
	KindProjectList:        "project_list",
	KindProjectState:       "project_state",
	KindProjectAttributes:  "project_attributes",
	KindCompilationOptions: "compilation_options",
	KindParseOptions:       "parse_options",
	KindChecksumList:       "checksum_list",
	KindProjectReference:   "project_reference",
	KindMetadataReference:  "metadata_reference",
	KindAnalyzerReference:  "analyzer_reference",
	KindDocumentList:       "document_list",
	KindDocumentState:      "document_state",
	KindDocumentAttributes: "document_attributes",
	KindSourceText:         "source_text",
}

func (k AssetKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindUnknown]
}

// Asset is any immutable object reachable from a solution checksum.
type Asset interface {
	Kind() AssetKind
}

// NewAsset returns a pointer to a zero value of the type registered for kind,
// ready to be decoded into.
func NewAsset(kind AssetKind) (Asset, error) {
	switch kind {
	case KindSolutionState:
		return &SolutionState{}, nil
	case KindSolutionAttributes:
		return &SolutionAttributes{}, nil
	case KindSolutionOptions:
		return &SolutionOptions{}, nil
	case KindProjectList:
		return &ProjectList{}, nil
	case KindProjectState:
		return &ProjectState{}, nil
	case KindProjectAttributes:
		return &ProjectAttributes{}, nil
	case KindCompilationOptions:
		return &CompilationOptions{}, nil
	case KindParseOptions:
		return &ParseOptions{}, nil
	case KindChecksumList:
		return &ChecksumList{}, nil
	case KindProjectReference:
		return &ProjectReference{}, nil
	case KindMetadataReference:
		return &MetadataReference{}, nil
	case KindAnalyzerReference:
		return &AnalyzerReference{}, nil
	case KindDocumentList:
		return &DocumentList{}, nil
	case KindDocumentState:
		return &DocumentState{}, nil
	case KindDocumentAttributes:
		return &DocumentAttributes{}, nil
	case KindSourceText:
		return &SourceText{}, nil
	default:
		return nil, zerr.With(zerr.Wrap(ErrUnknownAssetKind, "cannot allocate asset"), "kind", int(kind))
	}
}

// SolutionID identifies a solution across versions.
type SolutionID string

// ProjectID identifies a project across versions.
type ProjectID string

// DocumentID identifies a document across versions.
type DocumentID string

// AssetScope narrows where the client searches for requested checksums.
// The zero value means the whole solution. It is a hint only.
type AssetScope struct {
	ProjectID ProjectID `json:"project_id,omitempty"`
}

// IsSolution reports whether the scope covers the whole solution.
func (s AssetScope) IsSolution() bool {
	return s.ProjectID == ""
}

// SolutionAttributes holds the identity of a solution.
type SolutionAttributes struct {
	ID       SolutionID `json:"id"`
	FilePath string     `json:"file_path"`
	Version  int        `json:"version"`
}

// Kind implements Asset.
func (SolutionAttributes) Kind() AssetKind { return KindSolutionAttributes }

// SolutionOptions holds solution-wide option values.
type SolutionOptions struct {
	Values map[string]string `json:"values,omitempty"`
}

// Kind implements Asset.
func (SolutionOptions) Kind() AssetKind { return KindSolutionOptions }

// ProjectAttributes holds the identity and descriptive fields of a project.
type ProjectAttributes struct {
	ID           ProjectID `json:"id"`
	Name         string    `json:"name"`
	FilePath     string    `json:"file_path"`
	Language     string    `json:"language"`
	AssemblyName string    `json:"assembly_name"`
}

// Kind implements Asset.
func (ProjectAttributes) Kind() AssetKind { return KindProjectAttributes }

// CompilationOptions configures how a project is compiled.
type CompilationOptions struct {
	OutputKind  string `json:"output_kind"`
	Platform    string `json:"platform"`
	Optimize    bool   `json:"optimize"`
	AllowUnsafe bool   `json:"allow_unsafe"`
	Nullable    string `json:"nullable"`
}

// Kind implements Asset.
func (CompilationOptions) Kind() AssetKind { return KindCompilationOptions }

// ParseOptions configures how a project's documents are parsed.
type ParseOptions struct {
	LanguageVersion     string   `json:"language_version"`
	DocumentationMode   string   `json:"documentation_mode"`
	PreprocessorSymbols []string `json:"preprocessor_symbols,omitempty"`
}

// Kind implements Asset.
func (ParseOptions) Kind() AssetKind { return KindParseOptions }

// ProjectReference points at another project of the same solution.
type ProjectReference struct {
	ProjectID ProjectID `json:"project_id"`
	Aliases   []string  `json:"aliases,omitempty"`
}

// Kind implements Asset.
func (ProjectReference) Kind() AssetKind { return KindProjectReference }

// MetadataReference points at a compiled library.
type MetadataReference struct {
	FilePath string   `json:"file_path"`
	Aliases  []string `json:"aliases,omitempty"`
}

// Kind implements Asset.
func (MetadataReference) Kind() AssetKind { return KindMetadataReference }

// AnalyzerReference points at an analyzer assembly.
type AnalyzerReference struct {
	FilePath string `json:"file_path"`
}

// Kind implements Asset.
func (AnalyzerReference) Kind() AssetKind { return KindAnalyzerReference }

// DocumentAttributes holds the identity and descriptive fields of a document.
type DocumentAttributes struct {
	ID        DocumentID `json:"id"`
	Name      string     `json:"name"`
	FilePath  string     `json:"file_path"`
	Folders   []string   `json:"folders,omitempty"`
	Generated bool       `json:"generated,omitempty"`
}

// Kind implements Asset.
func (DocumentAttributes) Kind() AssetKind { return KindDocumentAttributes }

// SourceText is the content of a document.
type SourceText struct {
	Text     string `json:"text"`
	Encoding string `json:"encoding,omitempty"`
}

// Kind implements Asset.
func (SourceText) Kind() AssetKind { return KindSourceText }

// ChecksumList is an ordered list of child checksums.
type ChecksumList struct {
	Checksums []Checksum `json:"checksums"`
}

// Kind implements Asset.
func (ChecksumList) Kind() AssetKind { return KindChecksumList }

// ProjectEntry maps a project id to the checksum of its ProjectState.
type ProjectEntry struct {
	ID       ProjectID `json:"id"`
	Checksum Checksum  `json:"checksum"`
}

// ProjectList is the id to state-checksum map of a solution, sorted by id.
type ProjectList struct {
	Entries []ProjectEntry `json:"entries"`
}

// Kind implements Asset.
func (ProjectList) Kind() AssetKind { return KindProjectList }

// Map returns the entries keyed by project id.
func (l *ProjectList) Map() map[ProjectID]Checksum {
	m := make(map[ProjectID]Checksum, len(l.Entries))
	for _, e := range l.Entries {
		m[e.ID] = e.Checksum
	}
	return m
}

// DocumentEntry maps a document id to the checksum of its DocumentState.
type DocumentEntry struct {
	ID       DocumentID `json:"id"`
	Checksum Checksum   `json:"checksum"`
}

// DocumentList is the id to state-checksum map of one document collection, sorted by id.
type DocumentList struct {
	Entries []DocumentEntry `json:"entries"`
}

// Kind implements Asset.
func (DocumentList) Kind() AssetKind { return KindDocumentList }

// Map returns the entries keyed by document id.
func (l *DocumentList) Map() map[DocumentID]Checksum {
	m := make(map[DocumentID]Checksum, len(l.Entries))
	for _, e := range l.Entries {
		m[e.ID] = e.Checksum
	}
	return m
}

// SolutionState names the top-level children of a solution by checksum.
// A non-empty Cone marks a narrowed view restricted to those projects.
type SolutionState struct {
	Attributes         Checksum    `json:"attributes"`
	Options            Checksum    `json:"options"`
	Projects           Checksum    `json:"projects"`
	AnalyzerReferences Checksum    `json:"analyzer_references"`
	Cone               []ProjectID `json:"cone,omitempty"`
}

// Kind implements Asset.
func (SolutionState) Kind() AssetKind { return KindSolutionState }

// IsNarrowed reports whether the state describes a cone of projects.
func (s *SolutionState) IsNarrowed() bool {
	return len(s.Cone) > 0
}

// SameCone reports whether both states are narrowed to the same projects.
func (s *SolutionState) SameCone(other *SolutionState) bool {
	return slices.Equal(s.Cone, other.Cone)
}

// ProjectState names every child of a project by checksum.
type ProjectState struct {
	ID                      ProjectID `json:"id"`
	Attributes              Checksum  `json:"attributes"`
	CompilationOptions      Checksum  `json:"compilation_options"`
	ParseOptions            Checksum  `json:"parse_options"`
	ProjectReferences       Checksum  `json:"project_references"`
	MetadataReferences      Checksum  `json:"metadata_references"`
	AnalyzerReferences      Checksum  `json:"analyzer_references"`
	Documents               Checksum  `json:"documents"`
	AdditionalDocuments     Checksum  `json:"additional_documents"`
	AnalyzerConfigDocuments Checksum  `json:"analyzer_config_documents"`
}

// Kind implements Asset.
func (ProjectState) Kind() AssetKind { return KindProjectState }

// DocumentState names the attributes and text of a document by checksum.
type DocumentState struct {
	ID         DocumentID `json:"id"`
	Attributes Checksum   `json:"attributes"`
	Text       Checksum   `json:"text"`
}

// Kind implements Asset.
func (DocumentState) Kind() AssetKind { return KindDocumentState }
