package fs

import (
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"go.cachet.dev/cachet/internal/core/ports"
)

// Discoverer resolves manifest glob patterns to concrete files.
type Discoverer struct {
	logger ports.Logger
}

// NewDiscoverer creates a new Discoverer.
func NewDiscoverer(logger ports.Logger) *Discoverer {
	return &Discoverer{logger: logger}
}

// Discover resolves each pattern relative to root and returns the matches,
// de-duplicated and lexically sorted so the content hash is stable. Patterns
// may use `**` for recursive matching. Patterns that match nothing are fine;
// malformed patterns are logged and skipped.
func (d *Discoverer) Discover(root string, patterns []string) []string {
	unique := make(map[string]struct{})

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
		if err != nil {
			d.logger.Debug("skipping malformed manifest pattern", "pattern", pattern, "error", err)
			continue
		}
		for _, m := range matches {
			unique[m] = struct{}{}
		}
	}

	files := make([]string, 0, len(unique))
	for f := range unique {
		files = append(files, f)
	}
	sort.Strings(files)

	return files
}
