// Package fs provides file system adapters for copying, patching and
// fingerprinting package trees.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/zerr"
)

// Entry is a single file or directory found by the Walker.
type Entry struct {
	// Path is the entry path including the walk root.
	Path string
	// Rel is the path relative to the walk root. The root itself is ".".
	Rel string
	// Dir reports whether the entry is a directory.
	Dir bool
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk yields every entry under root in lexical order, root included.
// Directories always come before the entries beneath them. Traversal errors
// are yielded once and end the walk.
func (w *Walker) Walk(root string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		stopped := false
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}

			if !yield(Entry{Path: path, Rel: rel, Dir: d.IsDir()}, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield(Entry{}, zerr.With(zerr.Wrap(err, domain.ErrWalkFailed.Error()), "root", root))
		}
	}
}

// WalkFiles yields the paths of all regular entries under root.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for entry, err := range w.Walk(root) {
			if err != nil {
				yield("", err)
				return
			}
			if entry.Dir {
				continue
			}
			if !yield(entry.Path, nil) {
				return
			}
		}
	}
}
