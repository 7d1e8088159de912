package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileDeliverer writes downloads into Dir and sends clipboard text to
// Writer.
type FileDeliverer struct {
	Writer ClipboardWriter
	Dir    string

	// Written records the path of the last download, for reporting.
	Written string
}

// NewFileDeliverer creates dir when missing. An empty dir means the current
// working directory.
func NewFileDeliverer(dir string, cb ClipboardWriter) (*FileDeliverer, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		dir = wd
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &FileDeliverer{Dir: dir, Writer: cb}, nil
}

// Download writes d to Dir/<FileName>.
func (f *FileDeliverer) Download(ctx context.Context, d Download) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(f.Dir, filepath.Base(d.FileName))
	if err := os.WriteFile(path, d.Data, 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	f.Written = path
	return nil
}

// Clipboard copies text through the configured clipboard writer.
func (f *FileDeliverer) Clipboard(ctx context.Context, text string) error {
	if f.Writer == nil {
		return ErrClipboardUnavailable
	}
	return f.Writer.WriteText(ctx, text)
}
