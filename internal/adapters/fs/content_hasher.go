// Package fs implements manifest discovery and content hashing on the local
// filesystem.
package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"go.cachet.dev/cachet/internal/core/domain"
	"go.cachet.dev/cachet/internal/core/ports"
)

// ContentHasher digests the contents of dependency-manifest files.
type ContentHasher struct {
	logger ports.Logger
}

// NewContentHasher creates a new ContentHasher.
func NewContentHasher(logger ports.Logger) *ContentHasher {
	return &ContentHasher{logger: logger}
}

// HashFiles digests the concatenated contents of the given files, in input
// order, and returns the first 8 hex characters. A missing or unreadable
// file logs a warning and contributes nothing; the computation never aborts.
// Zero readable files still yield the deterministic empty-content digest, so
// callers that care must separately record whether any file was found.
func (h *ContentHasher) HashFiles(paths []string) string {
	digest := sha256.New()

	for _, path := range paths {
		f, err := os.Open(path) //nolint:gosec // Paths come from manifest discovery
		if err != nil {
			h.logger.Warn("skipping unreadable manifest", "path", path, "error", err)
			continue
		}
		if _, err := io.Copy(digest, f); err != nil {
			h.logger.Warn("failed reading manifest", "path", path, "error", err)
		}
		_ = f.Close()
	}

	return hex.EncodeToString(digest.Sum(nil))[:domain.DigestLen]
}
