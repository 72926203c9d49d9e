// Package config loads the workspace manifest and the documents it selects.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// DefaultEncoding is the encoding recorded for every loaded document.
const DefaultEncoding = "utf-8"

const (
	defaultLanguage  = "C#"
	manifestVersion  = 1
	editorConfigName = ".editorconfig"
)

var (
	identifierRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	defaultIncludes = map[string]string{
		"C#": "*.cs",
		"VB": "*.vb",
		"F#": "*.fs",
	}

	// skippedDirs are never searched for documents.
	skippedDirs = []string{"bin", "obj", "node_modules"}
)

var _ ports.SolutionLoader = (*Loader)(nil)

// Loader implements ports.SolutionLoader from replica.yaml.
type Loader struct {
	logger   ports.Logger
	fs       FileSystem
	validate *validator.Validate
}

// NewLoader creates a loader reading from the local filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{
		logger:   logger,
		fs:       fsys,
		validate: newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return identifierRegex.MatchString(fl.Field().String())
	})
	return v
}

// Load reads the manifest of the workspace at root and every document it selects.
func (l *Loader) Load(ctx context.Context, root string) (*domain.Solution, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve workspace root")
	}

	m, err := l.ReadManifest(root)
	if err != nil {
		return nil, err
	}

	projects := make([]*domain.Project, len(m.Projects))
	g, ctx := errgroup.WithContext(ctx)
	for i := range m.Projects {
		g.Go(func() error {
			p, err := l.loadProject(ctx, root, &m.Projects[i])
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to load project"), "project", m.Projects[i].ID)
			}
			projects[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.NewSolution(
		&domain.SolutionAttributes{
			ID:       domain.SolutionID(m.Solution),
			FilePath: domain.ManifestPath(root),
			Version:  manifestVersion,
		},
		&domain.SolutionOptions{Values: m.Options},
		analyzerReferences(root, m.Analyzers),
		projects,
	)
}

// ReadManifest parses and validates the manifest of the workspace at root.
func (l *Loader) ReadManifest(root string) (*Manifest, error) {
	path := domain.ManifestPath(root)
	data, err := l.fs.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "workspace has no manifest"), "root", root)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}
	if err := l.validate.Struct(&m); err != nil {
		return nil, zerr.With(validationError(domain.ErrConfigInvalid, err), "path", path)
	}
	if err := checkReferences(&m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid project references"), "path", path)
	}
	return &m, nil
}

// ValidateTuning checks the worker tunables against their validate tags.
func ValidateTuning(t domain.Tuning) error {
	if err := newValidator().Struct(t); err != nil {
		return validationError(domain.ErrInvalidTuning, err)
	}
	return nil
}

// validationError lists every failed field below sentinel.
func validationError(sentinel, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return zerr.Wrap(sentinel, err.Error())
	}

	lines := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		lines[i] = fmt.Sprintf("%s: failed on '%s'", fe.Namespace(), fe.Tag())
	}
	return zerr.With(zerr.Wrap(sentinel, strings.Join(lines, "\n")), "field", fieldErrs[0].Namespace())
}

// checkReferences rejects project references to ids the manifest does not declare.
func checkReferences(m *Manifest) error {
	known := make(map[string]bool, len(m.Projects))
	for _, p := range m.Projects {
		known[p.ID] = true
	}
	for _, p := range m.Projects {
		for _, ref := range p.References {
			if !known[ref] {
				err := zerr.Wrap(domain.ErrProjectNotFound, "unknown project reference")
				err = zerr.With(err, "project", p.ID)
				return zerr.With(err, "reference", ref)
			}
		}
	}
	return nil
}

func (l *Loader) loadProject(ctx context.Context, root string, dto *ProjectDTO) (*domain.Project, error) {
	dir := filepath.Join(root, filepath.FromSlash(dto.Directory))
	language := valueOr(dto.Language, defaultLanguage)
	include := dto.Include
	if len(include) == 0 {
		include = []string{defaultIncludes[language]}
	}
	configs := dto.Config
	if configs == nil {
		configs = []string{editorConfigName}
	}

	var docs, additional, analyzerConfigs []*domain.Document
	err := l.fs.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrSourceReadFailed, err.Error()), "path", path)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && (strings.HasPrefix(d.Name(), ".") || slices.Contains(skippedDirs, d.Name())) {
				return fs.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		var target *[]*domain.Document
		switch {
		case matchAny(include, rel):
			target = &docs
		case matchAny(configs, rel):
			target = &analyzerConfigs
		case matchAny(dto.Additional, rel):
			target = &additional
		default:
			return nil
		}

		doc, err := l.readDocument(root, path, rel)
		if err != nil {
			return err
		}
		*target = append(*target, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		l.logger.Warn(fmt.Sprintf("project %s selects no documents in %s", dto.ID, dto.Directory))
	}

	refs := make([]*domain.ProjectReference, len(dto.References))
	for i, ref := range dto.References {
		refs[i] = &domain.ProjectReference{ProjectID: domain.ProjectID(ref)}
	}
	metadata := make([]*domain.MetadataReference, len(dto.Metadata))
	for i, path := range dto.Metadata {
		metadata[i] = &domain.MetadataReference{FilePath: resolvePath(root, path)}
	}

	name := valueOr(dto.Name, dto.ID)
	return domain.NewProject(domain.ProjectContent{
		Attributes: &domain.ProjectAttributes{
			ID:           domain.ProjectID(dto.ID),
			Name:         name,
			FilePath:     dir,
			Language:     language,
			AssemblyName: valueOr(dto.Assembly, name),
		},
		CompilationOptions: &domain.CompilationOptions{
			OutputKind:  valueOr(dto.Compilation.OutputKind, "library"),
			Platform:    valueOr(dto.Compilation.Platform, "anycpu"),
			Optimize:    dto.Compilation.Optimize,
			AllowUnsafe: dto.Compilation.AllowUnsafe,
			Nullable:    valueOr(dto.Compilation.Nullable, "disable"),
		},
		ParseOptions: &domain.ParseOptions{
			LanguageVersion:     valueOr(dto.Parse.LanguageVersion, "latest"),
			DocumentationMode:   valueOr(dto.Parse.DocumentationMode, "parse"),
			PreprocessorSymbols: dto.Parse.Symbols,
		},
		ProjectReferences:       refs,
		MetadataReferences:      metadata,
		AnalyzerReferences:      analyzerReferences(root, dto.Analyzers),
		Documents:               docs,
		AdditionalDocuments:     additional,
		AnalyzerConfigDocuments: analyzerConfigs,
	})
}

func (l *Loader) readDocument(root, path, rel string) (*domain.Document, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSourceReadFailed, err.Error()), "path", path)
	}
	id, err := DocumentIDFor(root, path)
	if err != nil {
		return nil, err
	}

	var folders []string
	if dir := filepath.ToSlash(filepath.Dir(rel)); dir != "." {
		folders = strings.Split(dir, "/")
	}
	return domain.NewDocument(
		&domain.DocumentAttributes{
			ID:       id,
			Name:     filepath.Base(path),
			FilePath: path,
			Folders:  folders,
		},
		&domain.SourceText{Text: string(data), Encoding: DefaultEncoding},
	), nil
}

// DocumentIDFor returns the id of the document at path: its slash-separated path relative to root.
func DocumentIDFor(root, path string) (domain.DocumentID, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.With(zerr.New("path is outside the workspace"), "path", path), "root", root)
	}
	return domain.DocumentID(filepath.ToSlash(rel)), nil
}

// matchAny reports whether rel matches one of the globs. Globs without a slash
// are matched against the file name only.
func matchAny(globs []string, rel string) bool {
	base := rel[strings.LastIndex(rel, "/")+1:]
	for _, g := range globs {
		subject := rel
		if !strings.Contains(g, "/") {
			subject = base
		}
		if ok, _ := filepath.Match(g, subject); ok {
			return true
		}
	}
	return false
}

func analyzerReferences(root string, paths []string) []*domain.AnalyzerReference {
	refs := make([]*domain.AnalyzerReference, len(paths))
	for i, path := range paths {
		refs[i] = &domain.AnalyzerReference{FilePath: resolvePath(root, path)}
	}
	return refs
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, filepath.FromSlash(path))
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
