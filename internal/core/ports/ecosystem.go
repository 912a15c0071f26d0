package ports

// Ecosystem describes one package/dependency toolchain: how to probe it for
// its cache directory, where that directory lives by default, and which
// manifest files pin its dependency graph. One implementation exists per
// supported package manager.
type Ecosystem interface {
	// Name is the ecosystem identifier used in configuration and keys.
	Name() string

	// DetectCommand returns the argv that asks the tool itself for its cache
	// directory. An empty slice disables detection for this ecosystem.
	DetectCommand() []string

	// DefaultCachePath returns the static platform-keyed cache location used
	// when detection fails or is skipped.
	DefaultCachePath(goos, home string) string

	// AuxiliaryPatterns returns fixed extra path patterns the ecosystem
	// contributes, such as a build-output directory convention.
	AuxiliaryPatterns() []string

	// ManifestPatterns returns the glob patterns of the dependency-manifest
	// files whose content feeds the cache key.
	ManifestPatterns() []string
}
