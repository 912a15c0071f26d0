// Package blobdir implements the cache store gateway on a local directory.
// It copies path sets verbatim under per-key entry directories and keeps an
// index of saved keys for prefix lookups. No archive format, compression,
// transport or authentication is involved.
package blobdir

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
	"go.cachet.dev/cachet/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.CacheStore = (*Store)(nil)

// indexEntry records one saved cache entry.
type indexEntry struct {
	Key     string    `json:"key"`
	Paths   []string  `json:"paths"`
	SavedAt time.Time `json:"saved_at"`
}

// Store implements ports.CacheStore on a local directory tree:
//
//	<root>/index.json
//	<root>/entries/<hash-of-key>/<n>/...
type Store struct {
	root   string
	logger ports.Logger
}

// NewStore creates a Store rooted at the given directory, creating it if
// needed.
func NewStore(root string, logger ports.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(root, "entries"), 0o750); err != nil {
		return nil, zerr.Wrap(err, "failed to create store root")
	}
	return &Store{root: root, logger: logger}, nil
}

// Restore looks up the primary key exactly, then each restore-chain prefix
// in order (newest entry first), copies the matched entry's paths back onto
// disk and returns the matched key. An empty string means a miss.
func (s *Store) Restore(ctx context.Context, paths []string, primaryKey string, restoreChain []string) (string, error) {
	index, err := s.readIndex()
	if err != nil {
		return "", err
	}

	entry := matchEntry(index, primaryKey, restoreChain)
	if entry == nil {
		return "", nil
	}

	if err := s.copyOut(ctx, *entry); err != nil {
		return "", err
	}
	return entry.Key, nil
}

// Save persists every currently existing path of the set under the key and
// returns the entry directory as the identifier. Concurrent saves under the
// same key are at-least-one-wins: both write logically equivalent content,
// and the index update is last-writer.
func (s *Store) Save(ctx context.Context, paths []string, key string) (string, error) {
	entryDir := s.entryDir(key)

	// A fresh temp dir per save so a concurrent writer never sees a half
	// written entry under the final name.
	tmpDir, err := os.MkdirTemp(filepath.Join(s.root, "entries"), "save-")
	if err != nil {
		return "", zerr.Wrap(err, "failed to create staging directory")
	}
	defer os.RemoveAll(tmpDir) //nolint:errcheck // Best effort cleanup

	saved := make([]string, 0, len(paths))
	g, gctx := errgroup.WithContext(ctx)

	for _, path := range paths {
		resolved := resolvePaths(path)
		if len(resolved) == 0 {
			s.logger.Debug("skipping absent cache path", "path", path)
			continue
		}

		for _, match := range resolved {
			n := len(saved)
			saved = append(saved, match)

			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return copyTree(match, filepath.Join(tmpDir, fmt.Sprintf("%d", n)))
			})
		}
	}

	if err := g.Wait(); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to stage cache entry"), "key", key)
	}
	if len(saved) == 0 {
		return "", zerr.With(zerr.New("no cache path exists on disk"), "key", key)
	}

	if err := os.RemoveAll(entryDir); err != nil {
		return "", zerr.Wrap(err, "failed to clear previous entry")
	}
	if err := os.Rename(tmpDir, entryDir); err != nil {
		return "", zerr.Wrap(err, "failed to publish cache entry")
	}

	if err := s.updateIndex(indexEntry{Key: key, Paths: saved, SavedAt: time.Now().UTC()}); err != nil {
		return "", err
	}
	return entryDir, nil
}

// entryDir maps a key to its directory. Keys contain only hex and dashes,
// but hashing keeps the layout depth-1 and length-bounded regardless.
func (s *Store) entryDir(key string) string {
	return filepath.Join(s.root, "entries", fmt.Sprintf("%016x", xxhash.Sum64String(key)))
}

func (s *Store) indexPath() string {
	return filepath.Join(s.root, "index.json")
}

func (s *Store) readIndex() ([]indexEntry, error) {
	data, err := os.ReadFile(s.indexPath()) //nolint:gosec // Store-internal path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read store index")
	}

	var index []indexEntry
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal store index")
	}
	return index, nil
}

func (s *Store) updateIndex(entry indexEntry) error {
	index, err := s.readIndex()
	if err != nil {
		return err
	}

	// Replace any previous entry for the same key.
	kept := index[:0]
	for _, e := range index {
		if e.Key != entry.Key {
			kept = append(kept, e)
		}
	}
	index = append(kept, entry)

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal store index")
	}
	if err := os.WriteFile(s.indexPath(), data, 0o644); err != nil { //nolint:gosec // Store-internal path
		return zerr.Wrap(err, "failed to write store index")
	}
	return nil
}

// matchEntry resolves the lookup contract: exact key first, then each chain
// prefix in priority order, newest entry winning within a prefix.
func matchEntry(index []indexEntry, primaryKey string, restoreChain []string) *indexEntry {
	for i := range index {
		if index[i].Key == primaryKey {
			return &index[i]
		}
	}

	for _, prefix := range restoreChain {
		var candidates []indexEntry
		for _, e := range index {
			if strings.HasPrefix(e.Key, prefix) {
				candidates = append(candidates, e)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].SavedAt.After(candidates[j].SavedAt)
		})
		return &candidates[0]
	}

	return nil
}

// copyOut copies a saved entry's trees back to their original locations.
func (s *Store) copyOut(ctx context.Context, entry indexEntry) error {
	dir := s.entryDir(entry.Key)

	g, gctx := errgroup.WithContext(ctx)
	for i, dest := range entry.Paths {
		src := filepath.Join(dir, fmt.Sprintf("%d", i))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return copyTree(src, dest)
		})
	}

	if err := g.Wait(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to restore cache entry"), "key", entry.Key)
	}
	return nil
}

// resolvePaths expands the entry to every existing filesystem path: the
// path itself, or all glob matches. Empty when nothing exists yet. Patterns
// may use `**` for recursive matching.
func resolvePaths(path string) []string {
	if _, err := os.Stat(path); err == nil {
		return []string{path}
	}
	matches, err := doublestar.FilepathGlob(path)
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

// copyTree copies a file or directory tree from src to dst, overwriting
// existing files.
func copyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat source"), "path", src)
	}

	if !info.IsDir() {
		return copyFile(src, dst, info.Mode())
	}

	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o750)
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		if !fi.Mode().IsRegular() {
			// Symlinks and special files stay out of the cache entry.
			return nil
		}
		return copyFile(p, target, fi.Mode())
	})
}

func copyFile(src, dst string, mode fs.FileMode) error {
	in, err := os.Open(src) //nolint:gosec // Store-internal path
	if err != nil {
		return zerr.Wrap(err, "failed to open source file")
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create destination directory")
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode) //nolint:gosec // Store-internal path
	if err != nil {
		return zerr.Wrap(err, "failed to create destination file")
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.Wrap(err, "failed to copy file content")
	}
	return out.Close()
}
