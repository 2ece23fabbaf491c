package domain

import "slices"

// FeatureSet is the directive prepended to the primary source file of the
// packages that need internal compiler APIs.
type FeatureSet struct {
	Directive string   `yaml:"directive"`
	Packages  []string `yaml:"packages"`
}

// Applies reports whether the package called name gets the directive.
func (f FeatureSet) Applies(name string) bool {
	return f.Directive != "" && slices.Contains(f.Packages, name)
}

// Line returns the directive as a full source line.
func (f FeatureSet) Line() string {
	return f.Directive + "\n"
}
