package ecosystem

import "path/filepath"

// PNPM is the strategy for the pnpm package manager.
type PNPM struct{}

// Name returns the ecosystem identifier.
func (PNPM) Name() string { return "pnpm" }

// DetectCommand asks pnpm for its content-addressable store location.
func (PNPM) DetectCommand() []string {
	return []string{"pnpm", "store", "path"}
}

// DefaultCachePath returns pnpm's documented store location per platform.
func (PNPM) DefaultCachePath(goos, home string) string {
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "pnpm", "store")
	case "windows":
		return filepath.Join(home, "AppData", "Local", "pnpm", "store")
	default:
		return filepath.Join(home, ".local", "share", "pnpm", "store")
	}
}

// AuxiliaryPatterns returns the dependency-directory convention.
func (PNPM) AuxiliaryPatterns() []string {
	return []string{"**/node_modules"}
}

// ManifestPatterns returns the lockfiles that pin pnpm's dependency graph.
func (PNPM) ManifestPatterns() []string {
	return []string{"pnpm-lock.yaml"}
}
