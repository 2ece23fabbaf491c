package config

import "go.trai.ch/carve/internal/core/domain"

// Carvefile represents the structure of the carve.yaml configuration file.
// Every field is optional; omitted fields keep their defaults.
type Carvefile struct {
	Version   string        `yaml:"version"`
	Root      *string       `yaml:"root"`
	Out       *string       `yaml:"out"`
	Namespace NamespaceDTO  `yaml:"namespace"`
	Features  FeatureSetDTO `yaml:"features"`
}

// NamespaceDTO represents the renaming rules in the configuration.
type NamespaceDTO struct {
	Prefix    *string  `yaml:"prefix"`
	Replace   []string `yaml:"replace"`
	Separator *string  `yaml:"separator"`
}

// FeatureSetDTO represents the feature directive settings in the configuration.
type FeatureSetDTO struct {
	Directive *string  `yaml:"directive"`
	Packages  []string `yaml:"packages"`
}

// apply overlays the fields set in the file on top of cfg.
func (f *Carvefile) apply(cfg *domain.Config) {
	if f.Root != nil {
		cfg.Root = *f.Root
	}
	if f.Out != nil {
		cfg.Out = *f.Out
	}
	if f.Namespace.Prefix != nil {
		cfg.Namespace.Prefix = *f.Namespace.Prefix
	}
	if f.Namespace.Replace != nil {
		cfg.Namespace.Replace = f.Namespace.Replace
	}
	if f.Namespace.Separator != nil {
		cfg.Namespace.Separator = *f.Namespace.Separator
	}
	if f.Features.Directive != nil {
		cfg.Features.Directive = *f.Features.Directive
	}
	if f.Features.Packages != nil {
		cfg.Features.Packages = f.Features.Packages
	}
}
