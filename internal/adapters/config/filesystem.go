package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem abstracts the filesystem reads of the loader for testability.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// WalkDir walks the tree rooted at root, calling fn with absolute paths.
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// OSFS implements FileSystem using the standard library.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is validated by caller
	return os.ReadFile(path)
}

// WalkDir walks the tree rooted at root.
func (o *OSFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// MapFSAdapter adapts an fs.FS such as fstest.MapFS to FileSystem,
// pretending it is mounted at Root.
type MapFSAdapter struct {
	FS   fs.FS
	Root string
}

// NewMapFSAdapter creates a new MapFSAdapter with the given root path and filesystem.
func NewMapFSAdapter(root string, fsys fs.FS) *MapFSAdapter {
	return &MapFSAdapter{
		FS:   fsys,
		Root: root,
	}
}

// ReadFile reads the entire file at path.
func (m *MapFSAdapter) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(m.FS, m.toRelPath(path))
}

// WalkDir walks the tree rooted at root, reporting absolute paths under Root.
func (m *MapFSAdapter) WalkDir(root string, fn fs.WalkDirFunc) error {
	return fs.WalkDir(m.FS, m.toRelPath(root), func(path string, d fs.DirEntry, err error) error {
		return fn(filepath.Join(m.Root, filepath.FromSlash(path)), d, err)
	})
}

// toRelPath converts an absolute path to a path within the filesystem.
// Paths outside Root are returned unchanged so that fs operations fail with "file not found".
func (m *MapFSAdapter) toRelPath(absPath string) string {
	if !filepath.IsAbs(absPath) {
		return filepath.ToSlash(absPath)
	}
	if absPath == m.Root {
		return "."
	}
	if m.Root != "/" && !strings.HasPrefix(absPath, m.Root+string(filepath.Separator)) {
		return absPath
	}

	rel := strings.TrimPrefix(absPath, m.Root)
	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	return filepath.ToSlash(rel)
}
