// Package lifecycle coordinates the two cache phases around a build: the
// pre-build restore and the post-build save. No failure inside either phase
// may propagate to the surrounding pipeline; everything degrades to a logged
// warning and a weaker outcome.
package lifecycle

import (
	"context"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"go.cachet.dev/cachet/internal/core/domain"
	"go.cachet.dev/cachet/internal/core/ports"
)

// PathAggregator resolves and merges cache paths across ecosystems.
type PathAggregator interface {
	Aggregate(ctx context.Context, ecosystems []ports.Ecosystem, toolchain domain.ToolchainFingerprint, toolCacheDir string) *domain.CachePathSet
}

// ManifestDiscoverer resolves manifest globs to concrete files.
type ManifestDiscoverer interface {
	Discover(root string, patterns []string) []string
}

// ManifestHasher digests manifest file contents.
type ManifestHasher interface {
	HashFiles(paths []string) string
}

// RestoreReport is the restore phase's outcome for the reporting layer.
type RestoreReport struct {
	Hit          domain.HitState
	MatchedKey   string
	PrimaryKey   string
	RestoreChain []string
	Manifests    []string
	CachePaths   []string
}

// SaveReport is the save phase's outcome for the reporting layer.
type SaveReport struct {
	Saved   bool
	Key     string
	EntryID string
	// Reason explains a skipped or degraded save.
	Reason string
}

// Coordinator drives the cache store through both lifecycle phases, handing
// decision state from restore to save via the state store.
type Coordinator struct {
	aggregator PathAggregator
	discoverer ManifestDiscoverer
	hasher     ManifestHasher
	store      ports.CacheStore
	states     ports.StateStore
	logger     ports.Logger
	tracer     ports.Tracer
}

// NewCoordinator creates a Coordinator.
func NewCoordinator(
	aggregator PathAggregator,
	discoverer ManifestDiscoverer,
	hasher ManifestHasher,
	store ports.CacheStore,
	states ports.StateStore,
	logger ports.Logger,
	tracer ports.Tracer,
) *Coordinator {
	return &Coordinator{
		aggregator: aggregator,
		discoverer: discoverer,
		hasher:     hasher,
		store:      store,
		states:     states,
		logger:     logger,
		tracer:     tracer,
	}
}

// Restore computes the cache key, restore chain and path set, asks the store
// to restore the best match, records the handoff state for the save phase
// and classifies the result. Store failures degrade to a miss.
func (c *Coordinator) Restore(ctx context.Context, spec *domain.RunSpec, ecosystems []ports.Ecosystem) *RestoreReport {
	ctx, span := c.tracer.Start(ctx, "cache.restore")
	defer span.End()

	manifests := c.discoverer.Discover(spec.WorkDir, manifestPatterns(ecosystems, spec.ExtraManifests))
	contentHash := c.hasher.HashFiles(manifests)
	versionHash := domain.ComposeFingerprint(spec.Toolchain, spec.Manager, spec.ManagerVersion, spec.BustToken)

	key := domain.BuildKey(spec.Platform, versionHash, spec.Branch, contentHash)
	primary := key.String()
	chain := key.RestoreChain(spec.BustToken != "")
	paths := c.aggregator.Aggregate(ctx, ecosystems, spec.Toolchain, spec.ToolCacheDir).Canonical()

	span.SetAttribute("key", primary)

	matched, err := c.store.Restore(ctx, paths, primary, chain)
	if err != nil {
		c.logger.Warn("cache restore degraded to miss", "key", primary, "error", err)
		span.RecordError(err)
		matched = ""
	}

	hit := domain.ClassifyHit(matched, primary)
	span.SetAttribute("hit", hit.String())

	names := make([]string, 0, len(ecosystems))
	for _, eco := range ecosystems {
		names = append(names, eco.Name())
	}

	state := domain.LifecycleState{
		ResolvedKey: matched,
		PrimaryKey:  primary,
		CachePaths:  paths,
		Ecosystems:  names,
	}
	if err := c.states.Put(spec.RunKey, state); err != nil {
		// Without the handoff record the save phase turns into a no-op,
		// which is the correct degraded behavior.
		c.logger.Warn("failed to persist lifecycle state", "error", err)
		span.RecordError(err)
	}

	c.logger.Info("cache restore finished",
		"hit", hit.String(),
		"matched_key", matched,
		"primary_key", primary)

	return &RestoreReport{
		Hit:          hit,
		MatchedKey:   matched,
		PrimaryKey:   primary,
		RestoreChain: chain,
		Manifests:    manifests,
		CachePaths:   paths,
	}
}

// Save consumes the handoff state and uploads the path set under the primary
// key, unless the restore phase already observed an exact hit, nothing was
// initialized this run, or no configured path exists on disk. Store failures
// degrade to "nothing saved".
func (c *Coordinator) Save(ctx context.Context, spec *domain.RunSpec) *SaveReport {
	ctx, span := c.tracer.Start(ctx, "cache.save")
	defer span.End()

	state, err := c.states.Take(spec.RunKey)
	if err != nil {
		c.logger.Warn("failed to read lifecycle state", "error", err)
		span.RecordError(err)
		return &SaveReport{Reason: "lifecycle state unavailable"}
	}
	if state == nil || state.PrimaryKey == "" {
		return c.skip(span, "", "caching was not initialized this run")
	}
	if state.ResolvedKey == state.PrimaryKey {
		return c.skip(span, state.PrimaryKey, "exact hit at restore, content unchanged")
	}
	if !anyPathExists(state.CachePaths) {
		return c.skip(span, state.PrimaryKey, "no cache path exists on disk")
	}

	span.SetAttribute("key", state.PrimaryKey)

	id, err := c.store.Save(ctx, state.CachePaths, state.PrimaryKey)
	if err != nil {
		c.logger.Warn("cache save failed", "key", state.PrimaryKey, "error", err)
		span.RecordError(err)
		return &SaveReport{Key: state.PrimaryKey, Reason: "store save failed"}
	}

	c.logger.Info("cache saved", "key", state.PrimaryKey, "entry", id)
	return &SaveReport{Saved: true, Key: state.PrimaryKey, EntryID: id}
}

func (c *Coordinator) skip(span ports.Span, key, reason string) *SaveReport {
	span.SetAttribute("skipped", reason)
	c.logger.Info("cache save skipped", "reason", reason)
	return &SaveReport{Key: key, Reason: reason}
}

// manifestPatterns combines the ecosystems' manifest conventions with the
// configured extras, preserving contribution order without duplicates.
func manifestPatterns(ecosystems []ports.Ecosystem, extra []string) []string {
	seen := make(map[string]struct{})
	patterns := make([]string, 0)

	add := func(ps []string) {
		for _, p := range ps {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			patterns = append(patterns, p)
		}
	}

	for _, eco := range ecosystems {
		add(eco.ManifestPatterns())
	}
	add(extra)

	return patterns
}

// anyPathExists reports whether at least one entry of the set is present on
// disk, resolving glob patterns (`**` matches recursively).
func anyPathExists(paths []string) bool {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return true
		}
		if matches, err := doublestar.FilepathGlob(p); err == nil && len(matches) > 0 {
			return true
		}
	}
	return false
}
