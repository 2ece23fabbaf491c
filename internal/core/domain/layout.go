package domain

const (
	// ManifestFileName is the name of a package manifest and of the generated workspace descriptor.
	ManifestFileName = "Cargo.toml"

	// ConfigFileName is the name of the optional carve configuration file.
	ConfigFileName = "carve.yaml"

	// DefaultRootDir is the default location of the source tree.
	DefaultRootDir = "rust-src"

	// DefaultOutDir is the default location of the generated workspace.
	DefaultOutDir = "rustfmt-syntax"

	// LibAlias is the prefix under which a package may also be requested.
	LibAlias = "lib"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
