package domain

import (
	"cmp"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// PackageKey is the identity of a LocalPackage.
type PackageKey struct {
	Name    string
	RootDir string
}

// LocalPackage is a read-only view of a package that lives in the source tree.
type LocalPackage struct {
	Name         string
	RootDir      string
	SourcePath   string
	ManifestPath string
}

// Key returns the identity key of the package.
func (p LocalPackage) Key() PackageKey {
	return PackageKey{Name: p.Name, RootDir: p.RootDir}
}

// Compare orders packages by name, then by root directory.
func (p LocalPackage) Compare(o LocalPackage) int {
	return cmp.Or(
		cmp.Compare(p.Name, o.Name),
		cmp.Compare(p.RootDir, o.RootDir),
	)
}

// DirName is the directory name the package is materialized under.
func (p LocalPackage) DirName() string {
	return filepath.Base(p.RootDir)
}

// RelSourcePath returns the primary source path relative to the package root.
func (p LocalPackage) RelSourcePath() (string, error) {
	return p.relative(p.SourcePath)
}

// RelManifestPath returns the manifest path relative to the package root.
func (p LocalPackage) RelManifestPath() (string, error) {
	return p.relative(p.ManifestPath)
}

func (p LocalPackage) relative(path string) (string, error) {
	rel, err := filepath.Rel(p.RootDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.With(ErrSourceOutsideRoot, "package", p.Name), "path", path)
	}
	return rel, nil
}
