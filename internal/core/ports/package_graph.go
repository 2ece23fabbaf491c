// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/carve/internal/core/domain"
)

// PackageGraph answers package lookups against a single snapshot of the
// source tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_graph.go -destination=mocks/mock_package_graph.go -package=mocks
type PackageGraph interface {
	// Resolve returns the package called name, or the one whose "lib"-prefixed
	// alias is name. It returns domain.ErrPackageNotFound otherwise.
	Resolve(name string) (*domain.Package, error)
}

// MetadataProvider queries the package graph of a source tree.
type MetadataProvider interface {
	// Query returns a read-only snapshot of every package under root.
	Query(ctx context.Context, root string) (*domain.PackageIndex, error)
}
