package domain

import "strings"

// noBranchSentinel is hashed in place of the branch name when no branch is
// resolvable, so a key always has exactly four segments.
const noBranchSentinel = "no-branch"

// CacheKey identifies one cache entry. All four segments are always present.
type CacheKey struct {
	// Platform is the OS identifier the cache was produced on.
	Platform string
	// VersionHash is the toolchain fingerprint digest.
	VersionHash string
	// BranchHash is the digest of the branch name.
	BranchHash string
	// ContentHash is the digest of the dependency-manifest contents.
	ContentHash string
}

// BuildKey assembles a CacheKey, hashing the branch name. An empty branch
// hashes a fixed sentinel instead.
func BuildKey(platform, versionHash, branch, contentHash string) CacheKey {
	if branch == "" {
		branch = noBranchSentinel
	}
	return CacheKey{
		Platform:    platform,
		VersionHash: versionHash,
		BranchHash:  HashString(branch),
		ContentHash: contentHash,
	}
}

// String renders the key as a 4-segment dash-joined string.
func (k CacheKey) String() string {
	return strings.Join([]string{k.Platform, k.VersionHash, k.BranchHash, k.ContentHash}, "-")
}

// RestoreChain returns the ordered fallback key prefixes, most specific
// first. A busted run restores on the exact key only, so the chain is empty.
func (k CacheKey) RestoreChain(busted bool) []string {
	if busted {
		return nil
	}
	return []string{
		// Same branch, any manifest content.
		k.Platform + "-" + k.VersionHash + "-" + k.BranchHash + "-",
		// Any branch, any manifest content.
		k.Platform + "-" + k.VersionHash + "-",
	}
}
