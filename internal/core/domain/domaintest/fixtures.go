// Package domaintest provides solution fixtures and an in-memory asset source for tests.
package domaintest

import (
	"path"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/replica/internal/core/domain"
)

// Doc returns a document whose id doubles as its file path.
func Doc(id, text string) *domain.Document {
	return domain.NewDocument(
		&domain.DocumentAttributes{
			ID:       domain.DocumentID(id),
			Name:     path.Base(id),
			FilePath: "/ws/" + id,
		},
		&domain.SourceText{Text: text, Encoding: "utf-8"},
	)
}

// ProjectOption customizes a fixture project.
type ProjectOption func(*domain.ProjectContent)

// WithProjectRefs adds project references to the given project ids.
func WithProjectRefs(ids ...string) ProjectOption {
	return func(c *domain.ProjectContent) {
		for _, id := range ids {
			c.ProjectReferences = append(c.ProjectReferences, &domain.ProjectReference{ProjectID: domain.ProjectID(id)})
		}
	}
}

// WithMetadataRefs adds metadata references to the given paths.
func WithMetadataRefs(paths ...string) ProjectOption {
	return func(c *domain.ProjectContent) {
		for _, p := range paths {
			c.MetadataReferences = append(c.MetadataReferences, &domain.MetadataReference{FilePath: p})
		}
	}
}

// WithAdditionalDocs adds documents to the additional document collection.
func WithAdditionalDocs(docs ...*domain.Document) ProjectOption {
	return func(c *domain.ProjectContent) {
		c.AdditionalDocuments = append(c.AdditionalDocuments, docs...)
	}
}

// WithConfigDocs adds documents to the analyzer config document collection.
func WithConfigDocs(docs ...*domain.Document) ProjectOption {
	return func(c *domain.ProjectContent) {
		c.AnalyzerConfigDocuments = append(c.AnalyzerConfigDocuments, docs...)
	}
}

// WithSymbols sets the preprocessor symbols of the parse options.
func WithSymbols(symbols ...string) ProjectOption {
	return func(c *domain.ProjectContent) {
		c.ParseOptions = &domain.ParseOptions{
			LanguageVersion:     c.ParseOptions.LanguageVersion,
			DocumentationMode:   c.ParseOptions.DocumentationMode,
			PreprocessorSymbols: symbols,
		}
	}
}

// WithOptimize enables optimization in the compilation options.
func WithOptimize() ProjectOption {
	return func(c *domain.ProjectContent) {
		opts := *c.CompilationOptions
		opts.Optimize = true
		c.CompilationOptions = &opts
	}
}

// Project assembles a project with default options.
func Project(t testing.TB, id string, docs []*domain.Document, opts ...ProjectOption) *domain.Project {
	t.Helper()

	content := domain.ProjectContent{
		Attributes: &domain.ProjectAttributes{
			ID:           domain.ProjectID(id),
			Name:         id,
			FilePath:     "/ws/" + id + "/" + id + ".csproj",
			Language:     "C#",
			AssemblyName: id,
		},
		CompilationOptions: &domain.CompilationOptions{OutputKind: "library", Platform: "anycpu", Nullable: "enable"},
		ParseOptions:       &domain.ParseOptions{LanguageVersion: "latest", DocumentationMode: "parse"},
		Documents:          docs,
	}
	for _, opt := range opts {
		opt(&content)
	}

	p, err := domain.NewProject(content)
	require.NoError(t, err)
	return p
}

// Solution assembles a solution with fixed attributes around projects.
func Solution(t testing.TB, projects ...*domain.Project) *domain.Solution {
	t.Helper()

	s, err := domain.NewSolution(
		&domain.SolutionAttributes{ID: "sln", FilePath: "/ws/app.sln", Version: 1},
		&domain.SolutionOptions{Values: map[string]string{"tab_width": "4"}},
		[]*domain.AnalyzerReference{{FilePath: "/ws/analyzers/style.dll"}},
		projects,
	)
	require.NoError(t, err)
	return s
}
