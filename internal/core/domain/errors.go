package domain

import "go.trai.ch/zerr"

var (
	// ErrNoPackagesSpecified is returned when an extraction is requested without any package names.
	ErrNoPackagesSpecified = zerr.New("no packages specified")

	// ErrPackageNotFound is returned when a package name matches neither a package nor its "lib" alias.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrCycleDetected is returned when the local dependency edges of the package graph form a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrMetadataQueryFailed is returned when the package graph cannot be queried.
	ErrMetadataQueryFailed = zerr.New("failed to query package metadata")

	// ErrMetadataParseFailed is returned when the package metadata document cannot be decoded.
	ErrMetadataParseFailed = zerr.New("failed to parse package metadata")

	// ErrMissingSourceTarget is returned when a package declares no build target to take a source path from.
	ErrMissingSourceTarget = zerr.New("package has no source target")

	// ErrManifestParseFailed is returned when a manifest is not a valid TOML document.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrManifestMissingField is returned when a manifest lacks a field required for renaming.
	ErrManifestMissingField = zerr.New("manifest is missing a required field")

	// ErrManifestMarshalFailed is returned when a rewritten manifest cannot be serialized.
	ErrManifestMarshalFailed = zerr.New("failed to marshal manifest")

	// ErrDirCreateFailed is returned when a destination directory cannot be created.
	ErrDirCreateFailed = zerr.New("failed to create directory")

	// ErrFileReadFailed is returned when a file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrFileWriteFailed is returned when a file cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write file")

	// ErrDirectorySymlink is returned when a source tree holds a symbolic link to a directory.
	ErrDirectorySymlink = zerr.New("symbolic links to directories are not supported")

	// ErrWalkFailed is returned when a source tree cannot be traversed.
	ErrWalkFailed = zerr.New("failed to walk source tree")

	// ErrSourceOutsideRoot is returned when a primary source file does not live under its package root.
	ErrSourceOutsideRoot = zerr.New("source path is outside package root")

	// ErrDestinationNotEmpty is returned when the output directory already holds content and no clean was requested.
	ErrDestinationNotEmpty = zerr.New("destination is not empty, use --force to replace it")

	// ErrDestinationOverlapsRoot is returned when the output directory is the source root or one of its ancestors.
	ErrDestinationOverlapsRoot = zerr.New("destination must not contain the source root")

	// ErrDestinationCleanFailed is returned when the output directory cannot be removed.
	ErrDestinationCleanFailed = zerr.New("failed to clean destination")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidNamespace is returned when the namespace configuration has no target prefix.
	ErrInvalidNamespace = zerr.New("namespace prefix must not be empty")

	// ErrExtractionFailed is returned when materializing the workspace fails.
	ErrExtractionFailed = zerr.New("extraction failed")
)
