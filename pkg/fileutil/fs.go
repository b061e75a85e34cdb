// Package fileutil provides unified read-only access to the real file system
// and embedded file systems, with case-insensitive filename lookup.
package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem abstracts byte-source access for asset and soundfont loading.
// Implementations resolve names case-insensitively so that data authored on
// case-insensitive platforms keeps working everywhere.
type FileSystem interface {
	// Open opens the named file.
	Open(name string) (fs.File, error)
	// ReadFile reads the whole contents of the named file.
	ReadFile(name string) ([]byte, error)
	// BasePath returns the base path all names are resolved against.
	BasePath() string
	// IsEmbedded reports whether the backing store is an embedded file system.
	IsEmbedded() bool
}

// RealFS provides access to the real file system rooted at a base path.
type RealFS struct {
	basePath string
}

// NewRealFS creates a FileSystem over the real file system.
// An empty basePath resolves names against the current directory.
func NewRealFS(basePath string) *RealFS {
	return &RealFS{basePath: basePath}
}

func (r *RealFS) Open(name string) (fs.File, error) {
	path, err := r.resolve(name)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

func (r *RealFS) ReadFile(name string) ([]byte, error) {
	path, err := r.resolve(name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (r *RealFS) BasePath() string {
	return r.basePath
}

func (r *RealFS) IsEmbedded() bool {
	return false
}

func (r *RealFS) resolve(name string) (string, error) {
	path := strings.TrimPrefix(name, "/")
	if r.basePath != "" {
		path = filepath.Join(r.basePath, path)
	}
	// Direct hit first, then case-insensitive search.
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return FindFileCaseInsensitive(filepath.Dir(path), filepath.Base(path))
}

// EmbedFS provides access to an embedded (or any fs.FS) file system.
type EmbedFS struct {
	fsys     fs.FS
	basePath string
}

// NewEmbedFS creates a FileSystem over fsys with names resolved relative to
// basePath. Pass an empty basePath to use fsys paths directly.
func NewEmbedFS(fsys fs.FS, basePath string) *EmbedFS {
	return &EmbedFS{fsys: fsys, basePath: basePath}
}

func (e *EmbedFS) Open(name string) (fs.File, error) {
	path, err := e.resolve(name)
	if err != nil {
		return nil, err
	}
	return e.fsys.Open(path)
}

func (e *EmbedFS) ReadFile(name string) ([]byte, error) {
	path, err := e.resolve(name)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(e.fsys, path)
}

func (e *EmbedFS) BasePath() string {
	return e.basePath
}

func (e *EmbedFS) IsEmbedded() bool {
	return true
}

func (e *EmbedFS) resolve(name string) (string, error) {
	path := strings.TrimPrefix(name, "/")
	if path == "" || path == "." {
		path = e.basePath
	} else if e.basePath != "" {
		path = e.basePath + "/" + path
	}
	if f, err := e.fsys.Open(path); err == nil {
		f.Close()
		return path, nil
	}
	// embed.FS always uses forward slashes.
	dir := strings.ReplaceAll(filepath.Dir(path), "\\", "/")
	return FindFileCaseInsensitiveFS(e.fsys, dir, filepath.Base(path))
}

// FindFileCaseInsensitive searches dir for filename ignoring case and returns
// the actual path of the first match.
func FindFileCaseInsensitive(dir, filename string) (string, error) {
	search := strings.ToLower(filename)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.ToLower(entry.Name()) == search {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("file not found: %s (searched in %s)", filename, dir)
}

// FindFileCaseInsensitiveFS is FindFileCaseInsensitive over an fs.FS.
func FindFileCaseInsensitiveFS(fsys fs.FS, dir, filename string) (string, error) {
	search := strings.ToLower(filename)
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.ToLower(entry.Name()) == search {
			return dir + "/" + entry.Name(), nil
		}
	}
	return "", fmt.Errorf("file not found: %s (searched in %s)", filename, dir)
}
