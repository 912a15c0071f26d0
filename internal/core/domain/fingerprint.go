// Package domain contains the core types for cache key derivation.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// DigestLen is the number of hex characters kept from each 256-bit digest.
// Short enough for readable keys, with negligible collision risk inside a
// single repository's cache namespace.
const DigestLen = 8

// ToolchainFingerprint maps a runtime or tool name to its resolved version
// string. Insertion order is irrelevant; hashing sorts by name.
type ToolchainFingerprint map[string]string

// ShortDigest returns the first DigestLen hex characters of the SHA-256 sum
// of the given byte sequences, each terminated by a NUL separator.
func ShortDigest(parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		_, _ = h.Write(p)
		_, _ = h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))[:DigestLen]
}

// HashString returns the short digest of a single string.
func HashString(s string) string {
	return ShortDigest([]byte(s))
}

// ComposeFingerprint hashes the toolchain-version map together with the
// package-manager identity into a short digest. A non-empty bust token is fed
// first so that busted keys never collide with regular ones. Two maps with
// identical entries produce identical digests regardless of insertion order.
func ComposeFingerprint(tc ToolchainFingerprint, manager, managerVersion, bustToken string) string {
	parts := make([][]byte, 0, len(tc)+2)

	if bustToken != "" {
		parts = append(parts, []byte(bustToken))
	}

	names := make([]string, 0, len(tc))
	for name := range tc {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		parts = append(parts, []byte(name+":"+tc[name]))
	}
	parts = append(parts, []byte(manager+":"+managerVersion))

	return ShortDigest(parts...)
}
