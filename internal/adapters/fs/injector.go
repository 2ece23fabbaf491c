package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FeatureInjector = (*Injector)(nil)

// Injector prepends a feature directive to the primary source file of
// allow-listed packages.
type Injector struct {
	features domain.FeatureSet
}

// NewInjector creates an Injector for the given directive and allow-list.
func NewInjector(features domain.FeatureSet) *Injector {
	return &Injector{features: features}
}

// Applies reports whether pkg is allow-listed.
func (i *Injector) Applies(pkg domain.LocalPackage) bool {
	return i.features.Applies(pkg.Name)
}

// Inject rewrites the copy of the primary source file under dst so that its
// first line is the directive. The source tree is never read or written.
func (i *Injector) Inject(pkg domain.LocalPackage, dst string) error {
	rel, err := pkg.RelSourcePath()
	if err != nil {
		return err
	}
	path := filepath.Join(dst, rel)

	content, err := os.ReadFile(path) //nolint:gosec // Path is inside the output workspace
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}

	line := i.features.Line()
	patched := make([]byte, 0, len(line)+len(content))
	patched = append(patched, line...)
	patched = append(patched, content...)

	if err := os.WriteFile(path, patched, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	return nil
}
