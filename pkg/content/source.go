package content

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// Extension is the file extension of documents read by the sources.
const Extension = ".md"

// File is a single document.
type File struct {
	// Name is the base name including the extension.
	Name    string
	Data    []byte
	ModTime time.Time
}

// Slug returns the name without the extension.
func (f File) Slug() string {
	return strings.TrimSuffix(f.Name, Extension)
}

// Source lists documents.
type Source interface {
	Files(ctx context.Context) ([]File, error)
}

// FS reads documents from one directory of a file system.
type FS struct {
	fsys fs.FS
	dir  string
}

// NewFS returns a source reading dir of fsys. An empty dir means the root.
func NewFS(fsys fs.FS, dir string) *FS {
	if dir == "" {
		dir = "."
	}
	return &FS{fsys: fsys, dir: dir}
}

// Files returns the .md files of the directory. Subdirectories are skipped.
func (s *FS) Files(ctx context.Context) ([]File, error) {
	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListFailed, err)
	}

	files := make([]File, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}

		data, err := fs.ReadFile(s.fsys, path.Join(s.dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadFailed, e.Name(), err)
		}

		f := File{Name: e.Name(), Data: data}
		if info, err := e.Info(); err == nil {
			f.ModTime = info.ModTime()
		}
		files = append(files, f)
	}

	sortFiles(files)
	return files, nil
}

func sortFiles(files []File) {
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
}
