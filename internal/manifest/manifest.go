// Package manifest lists every resized icon variant to produce, as ordered
// (relative path, pixel size) records grouped by target platform.
package manifest

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
)

// ErrInvalidEntry is returned by Validate for malformed entries.
var ErrInvalidEntry = errors.New("invalid manifest entry")

// Entry is one output file: a slash-separated path relative to the output
// root and a square pixel size.
type Entry struct {
	Path string
	Size int
}

// Manifest is an ordered list of entries. Paths may repeat; a later entry
// overwrites the file written by an earlier one.
type Manifest []Entry

// Validate checks every entry has a positive size and a clean relative path
// that stays under the output root.
func (m Manifest) Validate() error {
	for i, e := range m {
		if e.Size <= 0 {
			return fmt.Errorf("%w: #%d %q: size %d", ErrInvalidEntry, i, e.Path, e.Size)
		}
		if e.Path == "" || path.IsAbs(e.Path) || strings.Contains(e.Path, `\`) {
			return fmt.Errorf("%w: #%d %q: path must be relative and slash-separated", ErrInvalidEntry, i, e.Path)
		}
		if c := path.Clean(e.Path); c != e.Path || c == "." || c == ".." || strings.HasPrefix(c, "../") {
			return fmt.Errorf("%w: #%d %q: path must be clean and inside the output root", ErrInvalidEntry, i, e.Path)
		}
	}
	return nil
}

// Sizes returns the distinct sizes in ascending order.
func (m Manifest) Sizes() []int {
	seen := make(map[int]bool, len(m))
	var sizes []int
	for _, e := range m {
		if !seen[e.Size] {
			seen[e.Size] = true
			sizes = append(sizes, e.Size)
		}
	}
	sort.Ints(sizes)
	return sizes
}

// CountBySize returns how many entries use each size.
func (m Manifest) CountBySize() map[int]int {
	counts := make(map[int]int, len(m))
	for _, e := range m {
		counts[e.Size]++
	}
	return counts
}
