// Package domain contains the core domain models for extracting a package closure.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// PackageIndex is an immutable snapshot of a package graph.
// It answers lookups by package name or by its "lib"-prefixed alias.
type PackageIndex struct {
	packages []Package
	byName   map[InternedString]int
}

// NewPackageIndex creates a snapshot over pkgs.
// When two packages share a name, the first one wins.
func NewPackageIndex(pkgs []Package) *PackageIndex {
	idx := &PackageIndex{
		packages: make([]Package, len(pkgs)),
		byName:   make(map[InternedString]int, len(pkgs)),
	}
	copy(idx.packages, pkgs)
	for i := range idx.packages {
		name := idx.packages[i].Name
		if _, exists := idx.byName[name]; exists {
			continue
		}
		idx.byName[name] = i
	}
	return idx
}

// Resolve returns the package called name, or the package whose "lib"-prefixed
// alias is name.
func (g *PackageIndex) Resolve(name string) (*Package, error) {
	if i, ok := g.byName[NewInternedString(name)]; ok {
		return &g.packages[i], nil
	}
	if trimmed, ok := strings.CutPrefix(name, LibAlias); ok && trimmed != "" {
		if i, ok := g.byName[NewInternedString(trimmed)]; ok {
			return &g.packages[i], nil
		}
	}
	return nil, zerr.With(ErrPackageNotFound, "package", name)
}

// Len returns the number of packages in the snapshot.
func (g *PackageIndex) Len() int {
	return len(g.packages)
}
