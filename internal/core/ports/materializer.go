package ports

import "go.trai.ch/carve/internal/core/domain"

// TreeCopier duplicates a directory tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=materializer.go -destination=mocks/mock_materializer.go -package=mocks
type TreeCopier interface {
	// CopyTree copies every entry under src to the same relative path under dst.
	CopyTree(src, dst string) error
}

// FeatureInjector patches the primary source file of a materialized package.
type FeatureInjector interface {
	// Applies reports whether the package needs the directive.
	Applies(pkg domain.LocalPackage) bool

	// Inject prepends the directive to the copy of the primary source file under dst.
	Inject(pkg domain.LocalPackage, dst string) error
}

// ManifestRewriter moves a materialized package under the private namespace.
type ManifestRewriter interface {
	// Rewrite renames the package and its local dependency aliases in the
	// manifest copy under dst.
	Rewrite(pkg domain.LocalPackage, dst string) error
}

// DescriptorWriter emits the top-level workspace descriptor.
type DescriptorWriter interface {
	// WriteDescriptor writes desc into the workspace directory dst.
	WriteDescriptor(dst string, desc *domain.WorkspaceDescriptor) error
}
