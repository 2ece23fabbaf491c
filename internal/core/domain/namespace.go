package domain

import "strings"

// DefaultSeparator joins a namespace prefix and a package name.
const DefaultSeparator = "_"

// Namespace describes how extracted packages are renamed so that they never
// collide with packages of the same name published elsewhere.
type Namespace struct {
	// Prefix is the target namespace token, e.g. "rustfmt".
	Prefix string `yaml:"prefix"`

	// Replace lists existing leading tokens that are swapped for Prefix
	// instead of being prefixed, e.g. "rustc".
	Replace []string `yaml:"replace"`

	// Separator joins the token and the rest of the name. Defaults to "_".
	Separator string `yaml:"separator"`
}

// Apply returns name moved under the namespace.
// A leading recognized token is replaced once; any other name is prefixed.
func (n Namespace) Apply(name string) string {
	sep := n.separator()
	target := n.Prefix + sep
	for _, token := range n.Replace {
		if token == "" {
			continue
		}
		lead := token + sep
		if strings.HasPrefix(name, lead) {
			return strings.Replace(name, lead, target, 1)
		}
	}
	return target + name
}

// Validate checks that the namespace can produce names.
func (n Namespace) Validate() error {
	if strings.TrimSpace(n.Prefix) == "" {
		return ErrInvalidNamespace
	}
	return nil
}

func (n Namespace) separator() string {
	if n.Separator == "" {
		return DefaultSeparator
	}
	return n.Separator
}
