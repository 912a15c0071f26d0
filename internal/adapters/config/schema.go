package config

// File represents the structure of the cachet.yaml configuration file.
type File struct {
	// Platform overrides the detected platform segment ("auto" or empty
	// keeps runtime.GOOS).
	Platform string `yaml:"platform"`
	// Branch pins the branch name instead of reading it from the CI
	// environment.
	Branch string `yaml:"branch"`
	// CacheBust, when set, forces exact-match-only restoration and a fresh
	// key namespace. Used for deterministic verification builds.
	CacheBust string `yaml:"cache_bust"`
	// Ecosystems lists the package managers to cache for.
	Ecosystems []string `yaml:"ecosystems"`
	// Toolchain maps runtime names to resolved versions.
	Toolchain map[string]string `yaml:"toolchain"`
	// PackageManager identifies the primary package manager and version.
	PackageManager ManagerDTO `yaml:"package_manager"`
	// Manifests adds extra manifest globs beyond ecosystem conventions.
	Manifests []string `yaml:"manifests"`
	// StatePath overrides where the lifecycle handoff record is kept.
	StatePath string `yaml:"state_path"`
	// StoreDir overrides the local cache store root.
	StoreDir string `yaml:"store_dir"`
	// ToolCacheDir overrides the tool-install cache root.
	ToolCacheDir string `yaml:"tool_cache_dir"`
}

// ManagerDTO is the package-manager identity in the configuration file.
type ManagerDTO struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}
