package ecosystem

import "path/filepath"

// NPM is the strategy for the npm package manager.
type NPM struct{}

// Name returns the ecosystem identifier.
func (NPM) Name() string { return "npm" }

// DetectCommand asks npm for its configured cache directory.
func (NPM) DetectCommand() []string {
	return []string{"npm", "config", "get", "cache"}
}

// DefaultCachePath returns npm's documented cache location per platform.
func (NPM) DefaultCachePath(goos, home string) string {
	if goos == "windows" {
		return filepath.Join(home, "AppData", "Local", "npm-cache")
	}
	return filepath.Join(home, ".npm")
}

// AuxiliaryPatterns returns the dependency-directory convention.
func (NPM) AuxiliaryPatterns() []string {
	return []string{"**/node_modules"}
}

// ManifestPatterns returns the lockfiles that pin npm's dependency graph.
func (NPM) ManifestPatterns() []string {
	return []string{"package-lock.json", "npm-shrinkwrap.json"}
}
