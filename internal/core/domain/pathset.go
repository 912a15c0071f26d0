package domain

import (
	"sort"
	"strings"
)

// CachePathSet holds the on-disk locations to cache: absolute paths and glob
// patterns. Duplicate entries collapse silently.
type CachePathSet struct {
	paths map[string]struct{}
}

// NewCachePathSet creates a set pre-populated with the given entries.
func NewCachePathSet(paths ...string) *CachePathSet {
	s := &CachePathSet{paths: make(map[string]struct{}, len(paths))}
	s.Add(paths...)
	return s
}

// Add inserts entries into the set. Empty strings are ignored.
func (s *CachePathSet) Add(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		s.paths[p] = struct{}{}
	}
}

// Merge inserts every entry of other into the set.
func (s *CachePathSet) Merge(other *CachePathSet) {
	if other == nil {
		return
	}
	for p := range other.paths {
		s.paths[p] = struct{}{}
	}
}

// Len returns the number of distinct entries.
func (s *CachePathSet) Len() int {
	return len(s.paths)
}

// Contains reports whether the set holds the given entry.
func (s *CachePathSet) Contains(path string) bool {
	_, ok := s.paths[path]
	return ok
}

// Canonical renders the set in its stable order: plain paths first, glob
// patterns second, each lexically sorted. The output is diffable run-to-run.
func (s *CachePathSet) Canonical() []string {
	plain := make([]string, 0, len(s.paths))
	globs := make([]string, 0)

	for p := range s.paths {
		if isGlobPattern(p) {
			globs = append(globs, p)
		} else {
			plain = append(plain, p)
		}
	}

	sort.Strings(plain)
	sort.Strings(globs)

	return append(plain, globs...)
}

// isGlobPattern reports whether the entry contains filepath.Match
// metacharacters.
func isGlobPattern(path string) bool {
	return strings.ContainsAny(path, "*?[")
}
