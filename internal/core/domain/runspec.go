package domain

// RunSpec is the fully resolved input for one pipeline run: configuration
// merged with CI environment fallbacks. It carries everything the lifecycle
// phases need, so the coordinator never touches the environment itself.
type RunSpec struct {
	// Platform is the platform identifier used as the first key segment.
	Platform string
	// Branch is the current branch name, possibly empty.
	Branch string
	// BustToken, when non-empty, forces exact-match-only restoration.
	BustToken string
	// Ecosystems are the package managers to cache for, in configured order.
	Ecosystems []string
	// Toolchain maps runtime names to resolved versions.
	Toolchain ToolchainFingerprint
	// Manager and ManagerVersion identify the primary package manager.
	Manager        string
	ManagerVersion string
	// ExtraManifests are additional manifest globs beyond the ecosystem
	// conventions.
	ExtraManifests []string
	// WorkDir is the repository root the manifests are discovered under.
	WorkDir string
	// RunKey scopes the lifecycle handoff record to one pipeline run.
	RunKey string
	// StatePath is where the handoff record is persisted.
	StatePath string
	// StoreDir is the root of the local cache store.
	StoreDir string
	// ToolCacheDir is the root under which tool installers keep per-version
	// caches.
	ToolCacheDir string
}
