package cargo

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestRewriter = (*ManifestRewriter)(nil)

// dependencySections are the manifest tables that declare dependencies, both
// at the top level and under target.<cfg>.
var dependencySections = []string{"dependencies", "dev-dependencies", "build-dependencies"}

// ManifestRewriter moves materialized packages under a private namespace by
// editing their manifest copies.
type ManifestRewriter struct {
	namespace domain.Namespace
}

// NewManifestRewriter creates a ManifestRewriter for namespace.
func NewManifestRewriter(namespace domain.Namespace) *ManifestRewriter {
	return &ManifestRewriter{namespace: namespace}
}

// Rewrite renames the manifest copy of pkg under dst, then re-serializes it in
// place.
func (r *ManifestRewriter) Rewrite(pkg domain.LocalPackage, dst string) error {
	rel, err := pkg.RelManifestPath()
	if err != nil {
		return err
	}
	path := filepath.Join(dst, rel)

	data, err := os.ReadFile(path) //nolint:gosec // Path is inside the output workspace
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	if err := r.RewriteDocument(doc); err != nil {
		return zerr.With(err, "path", path)
	}

	out, err := toml.Marshal(doc)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestMarshalFailed.Error()), "path", path)
	}

	if err := os.WriteFile(path, out, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	return nil
}

// RewriteDocument applies the namespace to a decoded manifest:
// package.name is renamed, and every path dependency gets a package alias
// pointing at the renamed package. Registry, git and workspace-inherited
// dependencies are left alone.
func (r *ManifestRewriter) RewriteDocument(doc map[string]any) error {
	pkgTable, ok := doc["package"].(map[string]any)
	if !ok {
		return zerr.With(domain.ErrManifestMissingField, "field", "package")
	}
	name, ok := pkgTable["name"].(string)
	if !ok {
		return zerr.With(domain.ErrManifestMissingField, "field", "package.name")
	}
	pkgTable["name"] = r.namespace.Apply(name)

	if err := r.rewriteSections(doc, ""); err != nil {
		return err
	}

	targets, ok := doc["target"].(map[string]any)
	if !ok {
		return nil
	}
	for cfg, raw := range targets {
		target, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if err := r.rewriteSections(target, "target."+cfg+"."); err != nil {
			return err
		}
	}
	return nil
}

func (r *ManifestRewriter) rewriteSections(table map[string]any, scope string) error {
	for _, section := range dependencySections {
		deps, ok := table[section].(map[string]any)
		if !ok {
			continue
		}
		if err := r.rewriteDependencies(deps, scope+section); err != nil {
			return err
		}
	}
	return nil
}

func (r *ManifestRewriter) rewriteDependencies(deps map[string]any, section string) error {
	for key, raw := range deps {
		dep, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if _, local := dep["path"]; !local {
			continue
		}

		alias := key
		if value, set := dep["package"]; set {
			s, ok := value.(string)
			if !ok {
				return zerr.With(domain.ErrManifestMissingField, "field", section+"."+key+".package")
			}
			alias = s
		}
		dep["package"] = r.namespace.Apply(alias)
	}
	return nil
}
