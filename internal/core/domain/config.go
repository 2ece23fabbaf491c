package domain

// Config holds the extraction settings.
type Config struct {
	Root      string
	Out       string
	Namespace Namespace
	Features  FeatureSet
}

// DefaultConfig returns the settings used when neither a config file nor
// flags override them.
func DefaultConfig() Config {
	return Config{
		Root: DefaultRootDir,
		Out:  DefaultOutDir,
		Namespace: Namespace{
			Prefix:    "rustfmt",
			Replace:   []string{"rustc"},
			Separator: DefaultSeparator,
		},
		Features: FeatureSet{
			Directive: "#![feature(rustc_private)]",
			Packages:  []string{"rustc_data_structures", "rustc_session"},
		},
	}
}
