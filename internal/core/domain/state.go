package domain

// LifecycleState is the handoff record between the two lifecycle phases of
// one pipeline run. The restore phase writes it exactly once; the save phase
// reads it exactly once and discards it. It is never reused across runs.
type LifecycleState struct {
	// ResolvedKey is the key the restore lookup matched, empty on a miss.
	ResolvedKey string `json:"resolved_key"`
	// PrimaryKey is the full 4-segment key computed at restore time.
	PrimaryKey string `json:"primary_key"`
	// CachePaths is the canonical path list computed at restore time.
	CachePaths []string `json:"cache_paths"`
	// Ecosystems are the ecosystem names the paths were aggregated from.
	Ecosystems []string `json:"ecosystems"`
}
