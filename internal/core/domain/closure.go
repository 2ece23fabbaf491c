package domain

import (
	"iter"
	"slices"
)

// Closure is an ordered set of local packages without duplicate identity keys.
// Members are kept sorted by name, then root directory.
type Closure struct {
	members []LocalPackage
}

// NewClosure creates an empty Closure.
func NewClosure() *Closure {
	return &Closure{}
}

// Add inserts p at its ordered position.
// It returns false when a package with the same key is already present.
func (c *Closure) Add(p LocalPackage) bool {
	i, found := slices.BinarySearchFunc(c.members, p, func(a, b LocalPackage) int {
		return a.Compare(b)
	})
	if found {
		return false
	}
	c.members = slices.Insert(c.members, i, p)
	return true
}

// Contains reports whether a package with the given key is a member.
func (c *Closure) Contains(key PackageKey) bool {
	probe := LocalPackage{Name: key.Name, RootDir: key.RootDir}
	_, found := slices.BinarySearchFunc(c.members, probe, func(a, b LocalPackage) int {
		return a.Compare(b)
	})
	return found
}

// Merge adds every member of other.
func (c *Closure) Merge(other *Closure) {
	for p := range other.All() {
		c.Add(p)
	}
}

// All yields the members in order.
func (c *Closure) All() iter.Seq[LocalPackage] {
	return slices.Values(c.members)
}

// Members returns a copy of the ordered members.
func (c *Closure) Members() []LocalPackage {
	return slices.Clone(c.members)
}

// Names returns the member names in order.
func (c *Closure) Names() []string {
	names := make([]string, len(c.members))
	for i, p := range c.members {
		names[i] = p.Name
	}
	return names
}

// Len returns the number of members.
func (c *Closure) Len() int {
	return len(c.members)
}
