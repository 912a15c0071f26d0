package ecosystem

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"go.cachet.dev/cachet/internal/core/domain"
	"go.cachet.dev/cachet/internal/core/ports"
)

// Aggregator resolves, merges and de-duplicates cache directories across
// ecosystems. Probe failures degrade to static defaults and never propagate
// as errors.
type Aggregator struct {
	runner ports.CommandRunner
	logger ports.Logger
	goos   string
	home   string
}

// NewAggregator creates an Aggregator for the current platform.
func NewAggregator(runner ports.CommandRunner, logger ports.Logger) *Aggregator {
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Debug("home directory unresolved, defaults will be relative", "error", err)
	}
	return NewAggregatorFor(runner, logger, runtime.GOOS, home)
}

// NewAggregatorFor creates an Aggregator with an explicit platform and home
// directory. Used by tests and cross-platform key verification.
func NewAggregatorFor(runner ports.CommandRunner, logger ports.Logger, goos, home string) *Aggregator {
	return &Aggregator{
		runner: runner,
		logger: logger,
		goos:   goos,
		home:   home,
	}
}

// Aggregate collects every cache path the given ecosystems contribute: the
// detected (or default) cache directory, the fixed auxiliary patterns, and
// one tool-install cache path per toolchain entry. Duplicates collapse; the
// set renders in canonical order.
func (a *Aggregator) Aggregate(ctx context.Context, ecosystems []ports.Ecosystem, toolchain domain.ToolchainFingerprint, toolCacheDir string) *domain.CachePathSet {
	set := domain.NewCachePathSet()

	for _, eco := range ecosystems {
		cachePath := a.detectCachePath(ctx, eco)
		if cachePath.IsDegraded() {
			a.logger.Debug("cache path detection degraded",
				"ecosystem", eco.Name(),
				"reason", cachePath.Reason(),
				"fallback", cachePath.Value())
		}
		set.Add(cachePath.Value())
		set.Add(eco.AuxiliaryPatterns()...)
	}

	if toolCacheDir != "" {
		// Sorted for a deterministic Add order; the set is order-insensitive
		// but debug traces should be stable.
		tools := make([]string, 0, len(toolchain))
		for tool := range toolchain {
			tools = append(tools, tool)
		}
		sort.Strings(tools)

		for _, tool := range tools {
			set.Add(filepath.Join(toolCacheDir, tool, toolchain[tool]))
		}
	}

	return set
}

// detectCachePath invokes the ecosystem's own tool to report its cache
// directory, falling back to the platform default when the probe fails,
// reports nothing, or is not defined for the ecosystem.
func (a *Aggregator) detectCachePath(ctx context.Context, eco ports.Ecosystem) domain.Outcome[string] {
	fallback := eco.DefaultCachePath(a.goos, a.home)

	argv := eco.DetectCommand()
	if len(argv) == 0 {
		return domain.Degraded(fallback, "detection not supported")
	}

	out, err := a.runner.Run(ctx, argv[0], argv[1:]...)
	if err != nil {
		return domain.Degraded(fallback, err.Error())
	}
	if out == "" {
		return domain.Degraded(fallback, "probe reported no path")
	}

	return domain.Ok(out)
}
