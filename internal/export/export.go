// Package export resamples the master icon to every manifest size and writes
// the results as PNG files under an output root.
package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nouvelle/iconset/internal/manifest"
	"github.com/nouvelle/iconset/internal/system"
)

const dirPerm = 0o755

var (
	// ErrMissingDir is returned when the output root, or an entry's parent
	// directory with Options.NoCreateDirs set, does not exist.
	ErrMissingDir = errors.New("missing directory")
	// ErrNotWritable is returned when the output root cannot be written to.
	ErrNotWritable = errors.New("directory not writable")
)

// Written describes one file produced by ExportAll. Path is the manifest
// path, relative to the output root.
type Written struct {
	Path string
	Size int
}

// Options tune ExportAll. The zero value resamples with Lanczos and creates
// missing parent directories.
type Options struct {
	Filter       Filter
	NoCreateDirs bool
	// Progress, if set, is called after each file is written.
	Progress func(Written)
}

// Result lists the files written, in manifest order.
type Result struct {
	Written []Written
}

// Count returns the number of files written.
func (r Result) Count() int { return len(r.Written) }

// Paths returns the written manifest paths.
func (r Result) Paths() []string {
	paths := make([]string, len(r.Written))
	for i, w := range r.Written {
		paths[i] = w.Path
	}
	return paths
}

// ExportAll writes one PNG per manifest entry under root, which must exist.
// It stops at the first error; files written before it are left in place and
// reported in the returned Result.
func ExportAll(ctx context.Context, master image.Image, m manifest.Manifest, root string, opts Options) (Result, error) {
	var res Result
	if err := m.Validate(); err != nil {
		return res, err
	}
	if err := checkRoot(root); err != nil {
		return res, err
	}

	resized := make(map[int]image.Image)
	for _, e := range m {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		dst := filepath.Join(root, filepath.FromSlash(e.Path))
		if err := ensureParent(dst, opts.NoCreateDirs); err != nil {
			return res, err
		}

		img, ok := resized[e.Size]
		if !ok {
			img = Resize(master, e.Size, opts.Filter)
			resized[e.Size] = img
		}
		if err := SavePNG(dst, img); err != nil {
			return res, fmt.Errorf("write %s: %w", e.Path, err)
		}

		w := Written{Path: e.Path, Size: e.Size}
		res.Written = append(res.Written, w)
		if opts.Progress != nil {
			opts.Progress(w)
		}
	}
	return res, nil
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: output root %s", ErrMissingDir, root)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: output root %s is not a directory", ErrMissingDir, root)
	}
	if err := system.CheckWritable(root); err != nil {
		return fmt.Errorf("%w: %v", ErrNotWritable, err)
	}
	return nil
}

func ensureParent(path string, noCreate bool) error {
	dir := filepath.Dir(path)
	if !noCreate {
		return os.MkdirAll(dir, dirPerm)
	}
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return fmt.Errorf("%w: %s", ErrMissingDir, dir)
	}
	return err
}
