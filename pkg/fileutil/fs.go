package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem abstracts real and embedded filesystems behind the two
// operations the script loader needs. All lookups ignore case on the
// final path element.
type FileSystem interface {
	// ReadFile reads the named file.
	ReadFile(name string) ([]byte, error)
	// Exists reports whether the named file can be resolved.
	Exists(name string) bool
}

// RealFS serves files from a base directory on the host filesystem.
type RealFS struct {
	basePath string
}

// NewRealFS creates a FileSystem rooted at basePath.
func NewRealFS(basePath string) *RealFS {
	return &RealFS{basePath: basePath}
}

func (r *RealFS) ReadFile(name string) ([]byte, error) {
	actual, err := r.resolve(name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(actual)
}

func (r *RealFS) Exists(name string) bool {
	_, err := r.resolve(name)
	return err == nil
}

func (r *RealFS) resolve(name string) (string, error) {
	path := name
	if r.basePath != "" && !filepath.IsAbs(name) {
		path = filepath.Join(r.basePath, name)
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return FindFileCaseInsensitive(filepath.Dir(path), filepath.Base(path))
}

// EmbedFS serves files from an fs.FS, typically an embed.FS holding a
// bundled title.
type EmbedFS struct {
	fsys     fs.FS
	basePath string
}

// NewEmbedFS creates a FileSystem over fsys rooted at basePath.
func NewEmbedFS(fsys fs.FS, basePath string) *EmbedFS {
	return &EmbedFS{fsys: fsys, basePath: basePath}
}

func (e *EmbedFS) ReadFile(name string) ([]byte, error) {
	actual, err := e.resolve(name)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(e.fsys, actual)
}

func (e *EmbedFS) Exists(name string) bool {
	_, err := e.resolve(name)
	return err == nil
}

func (e *EmbedFS) resolve(name string) (string, error) {
	// fs.FS paths always use forward slashes and no leading slash.
	clean := strings.TrimPrefix(strings.ReplaceAll(name, "\\", "/"), "/")
	if e.basePath != "" {
		clean = e.basePath + "/" + clean
	}
	if f, err := e.fsys.Open(clean); err == nil {
		f.Close()
		return clean, nil
	}
	dir := "."
	if i := strings.LastIndex(clean, "/"); i >= 0 {
		dir = clean[:i]
	}
	return FindFileCaseInsensitiveFS(e.fsys, dir, filepath.Base(clean))
}
