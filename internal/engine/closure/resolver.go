// Package closure computes the set of local packages reachable from a list of
// requested packages.
package closure

import (
	"strings"

	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
	"go.trai.ch/zerr"
)

type visitState uint8

const (
	unvisited visitState = iota
	visiting
	visited
)

// frame is one package on the traversal path together with the index of the
// next local dependency to follow.
type frame struct {
	pkg  *domain.Package
	key  domain.PackageKey
	deps []domain.Dependency
	next int
}

// Resolver computes dependency closures over a package graph.
type Resolver struct {
	graph ports.PackageGraph
}

// NewResolver creates a new Resolver reading from graph.
func NewResolver(graph ports.PackageGraph) *Resolver {
	return &Resolver{graph: graph}
}

// Compute returns every package reachable from names through local
// dependency edges, the requested packages included.
// External dependencies are never followed. Lookup failures are returned as
// reported by the graph.
func (r *Resolver) Compute(names []string) (*domain.Closure, error) {
	if len(names) == 0 {
		return nil, domain.ErrNoPackagesSpecified
	}

	result := domain.NewClosure()
	state := make(map[domain.PackageKey]visitState)

	for _, name := range names {
		if err := r.walk(name, state, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// walk runs an iterative depth-first traversal from root.
// A package is added to out once all of its local dependencies are.
func (r *Resolver) walk(root string, state map[domain.PackageKey]visitState, out *domain.Closure) error {
	pkg, err := r.graph.Resolve(root)
	if err != nil {
		return err
	}
	if state[keyOf(pkg)] == visited {
		return nil
	}

	stack := []*frame{enter(pkg, state)}
	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.next == len(top.deps) {
			state[top.key] = visited
			out.Add(top.pkg.Descriptor())
			stack = stack[:len(stack)-1]
			continue
		}

		dep := top.deps[top.next]
		top.next++

		child, err := r.graph.Resolve(dep.Name.String())
		if err != nil {
			return err
		}

		key := keyOf(child)
		switch state[key] {
		case visiting:
			return buildCycleError(stack, key)
		case visited:
			continue
		case unvisited:
			stack = append(stack, enter(child, state))
		}
	}

	return nil
}

func enter(pkg *domain.Package, state map[domain.PackageKey]visitState) *frame {
	f := &frame{pkg: pkg, key: keyOf(pkg)}
	for dep := range pkg.LocalDependencies() {
		f.deps = append(f.deps, dep)
	}
	state[f.key] = visiting
	return f
}

func keyOf(pkg *domain.Package) domain.PackageKey {
	return domain.PackageKey{Name: pkg.Name.String(), RootDir: pkg.RootDir()}
}

// buildCycleError constructs an error with cycle path metadata.
func buildCycleError(stack []*frame, dep domain.PackageKey) error {
	start := 0
	for i, f := range stack {
		if f.key == dep {
			start = i
			break
		}
	}
	names := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		names = append(names, f.key.Name)
	}
	names = append(names, dep.Name)
	return zerr.With(domain.ErrCycleDetected, "cycle", strings.Join(names, " -> "))
}
