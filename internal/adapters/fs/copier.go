package fs

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TreeCopier = (*Copier)(nil)

// Copier duplicates package trees into the output workspace.
type Copier struct {
	walker *Walker
}

// NewCopier creates a new Copier.
func NewCopier(walker *Walker) *Copier {
	return &Copier{walker: walker}
}

// CopyTree copies every entry under src to the same relative path under dst.
// File contents are copied byte for byte; permissions, timestamps and link
// targets are not preserved, so a symlinked file becomes a copy of its target.
// Symlinks to directories are refused. The first error aborts the copy and leaves
// whatever was already written in place.
func (c *Copier) CopyTree(src, dst string) error {
	for entry, err := range c.walker.Walk(src) {
		if err != nil {
			return err
		}

		target := filepath.Join(dst, entry.Rel)
		if entry.Dir {
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrDirCreateFailed.Error()), "path", target)
			}
			continue
		}

		if err := copyFile(entry.Path, target); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path comes from walking the source tree
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", src)
	}
	defer in.Close() //nolint:errcheck // Read-only file

	info, err := in.Stat()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", src)
	}
	if info.IsDir() {
		return zerr.With(zerr.Wrap(domain.ErrDirectorySymlink, domain.ErrFileReadFailed.Error()), "path", src)
	}

	//nolint:gosec // Destination is derived from the output root
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", dst)
	}
	return nil
}
