package ecosystem

import "path/filepath"

// Yarn is the strategy for the yarn package manager (classic layout).
type Yarn struct{}

// Name returns the ecosystem identifier.
func (Yarn) Name() string { return "yarn" }

// DetectCommand asks yarn for its cache directory.
func (Yarn) DetectCommand() []string {
	return []string{"yarn", "cache", "dir"}
}

// DefaultCachePath returns yarn's documented cache location per platform.
func (Yarn) DefaultCachePath(goos, home string) string {
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "Yarn")
	case "windows":
		return filepath.Join(home, "AppData", "Local", "Yarn", "Cache")
	default:
		return filepath.Join(home, ".cache", "yarn")
	}
}

// AuxiliaryPatterns returns the dependency-directory convention.
func (Yarn) AuxiliaryPatterns() []string {
	return []string{"**/node_modules"}
}

// ManifestPatterns returns the lockfiles that pin yarn's dependency graph.
func (Yarn) ManifestPatterns() []string {
	return []string{"yarn.lock"}
}
