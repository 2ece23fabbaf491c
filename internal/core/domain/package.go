package domain

import (
	"iter"
	"path/filepath"
)

// Dependency is a single declared dependency of a package, of any kind.
type Dependency struct {
	// Name is the name of the package depended upon.
	Name InternedString

	// Source is the registry or remote source. It is empty for path dependencies.
	Source string
}

// IsLocal reports whether the dependency is resolved through a filesystem path.
func (d Dependency) IsLocal() bool {
	return d.Source == ""
}

// Package is a package as reported by the package graph.
type Package struct {
	Name         InternedString
	ManifestPath string
	SourcePath   string
	Dependencies []Dependency
}

// RootDir returns the directory holding the package manifest.
func (p *Package) RootDir() string {
	return filepath.Dir(p.ManifestPath)
}

// LocalDependencies yields the dependencies resolved through a filesystem path.
func (p *Package) LocalDependencies() iter.Seq[Dependency] {
	return func(yield func(Dependency) bool) {
		for _, dep := range p.Dependencies {
			if !dep.IsLocal() {
				continue
			}
			if !yield(dep) {
				return
			}
		}
	}
}

// Descriptor returns the local package view of p.
func (p *Package) Descriptor() LocalPackage {
	return LocalPackage{
		Name:         p.Name.String(),
		RootDir:      p.RootDir(),
		SourcePath:   p.SourcePath,
		ManifestPath: p.ManifestPath,
	}
}
