// Package cargo adapts the Cargo package manager: it reads the package graph
// from cargo metadata and rewrites manifests of materialized packages.
package cargo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.MetadataProvider = (*MetadataProvider)(nil)
	_ ports.MetadataProvider = (*DocumentProvider)(nil)
)

// metadataFormatVersion is the cargo metadata schema understood by the decoder.
const metadataFormatVersion = "1"

// libTargetKind marks the library target of a package.
const libTargetKind = "lib"

type metadataDocument struct {
	Packages []metadataPackage `json:"packages"`
}

type metadataPackage struct {
	Name         string               `json:"name"`
	ManifestPath string               `json:"manifest_path"`
	Targets      []metadataTarget     `json:"targets"`
	Dependencies []metadataDependency `json:"dependencies"`
}

type metadataTarget struct {
	Kind    []string `json:"kind"`
	SrcPath string   `json:"src_path"`
}

type metadataDependency struct {
	Name   string  `json:"name"`
	Source *string `json:"source"`
}

// MetadataProvider queries the package graph by running cargo metadata in the
// source root.
type MetadataProvider struct {
	runner *Runner
}

// NewMetadataProvider creates a MetadataProvider backed by runner.
func NewMetadataProvider(runner *Runner) *MetadataProvider {
	return &MetadataProvider{runner: runner}
}

// Query runs cargo metadata without resolving registry dependencies and
// decodes its output.
func (p *MetadataProvider) Query(ctx context.Context, root string) (*domain.PackageIndex, error) {
	out, err := p.runner.Output(ctx, root, "metadata", "--no-deps", "--format-version", metadataFormatVersion)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(out), root)
}

// DocumentProvider reads a pre-generated cargo metadata document, which allows
// extraction without a cargo toolchain.
type DocumentProvider struct {
	path string
}

// NewDocumentProvider creates a DocumentProvider for the document at path.
func NewDocumentProvider(path string) *DocumentProvider {
	return &DocumentProvider{path: path}
}

// Query decodes the document. Relative paths inside it are resolved against root.
func (p *DocumentProvider) Query(_ context.Context, root string) (*domain.PackageIndex, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataQueryFailed.Error()), "path", p.path)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	return Decode(f, root)
}

// Decode builds a package index from a cargo metadata document.
func Decode(r io.Reader, root string) (*domain.PackageIndex, error) {
	var doc metadataDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrMetadataParseFailed.Error())
	}

	packages := make([]domain.Package, 0, len(doc.Packages))
	for i := range doc.Packages {
		pkg, err := convertPackage(&doc.Packages[i], root)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}

	return domain.NewPackageIndex(packages), nil
}

func convertPackage(raw *metadataPackage, root string) (domain.Package, error) {
	if raw.Name == "" || raw.ManifestPath == "" {
		return domain.Package{}, zerr.With(domain.ErrMetadataParseFailed, "package", raw.Name)
	}

	target, ok := primaryTarget(raw.Targets)
	if !ok {
		return domain.Package{}, zerr.With(domain.ErrMissingSourceTarget, "package", raw.Name)
	}

	deps := make([]domain.Dependency, 0, len(raw.Dependencies))
	for _, dep := range raw.Dependencies {
		d := domain.Dependency{Name: domain.NewInternedString(dep.Name)}
		if dep.Source != nil {
			d.Source = *dep.Source
		}
		deps = append(deps, d)
	}

	return domain.Package{
		Name:         domain.NewInternedString(raw.Name),
		ManifestPath: resolvePath(root, raw.ManifestPath),
		SourcePath:   resolvePath(root, target.SrcPath),
		Dependencies: deps,
	}, nil
}

// primaryTarget returns the library target, or the first target when the
// package has no library.
func primaryTarget(targets []metadataTarget) (metadataTarget, bool) {
	for _, target := range targets {
		if slices.Contains(target.Kind, libTargetKind) {
			return target, true
		}
	}
	if len(targets) == 0 {
		return metadataTarget{}, false
	}
	return targets[0], true
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}
