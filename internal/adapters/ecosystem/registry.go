// Package ecosystem implements per-package-manager cache strategies and the
// cross-ecosystem path aggregator.
package ecosystem

import (
	"go.cachet.dev/cachet/internal/core/domain"
	"go.cachet.dev/cachet/internal/core/ports"
	"go.trai.ch/zerr"
)

// registry holds one strategy per supported package manager.
var registry = map[string]ports.Ecosystem{
	"pnpm": PNPM{},
	"npm":  NPM{},
	"yarn": Yarn{},
}

// For returns the strategy registered under the given name.
func For(name string) (ports.Ecosystem, error) {
	eco, ok := registry[name]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownEcosystem, "ecosystem", name)
	}
	return eco, nil
}

// Resolve maps configured ecosystem names to their strategies, preserving
// order.
func Resolve(names []string) ([]ports.Ecosystem, error) {
	if len(names) == 0 {
		return nil, domain.ErrNoEcosystems
	}

	ecos := make([]ports.Ecosystem, 0, len(names))
	for _, name := range names {
		eco, err := For(name)
		if err != nil {
			return nil, err
		}
		ecos = append(ecos, eco)
	}
	return ecos, nil
}

// Supported returns the names of all registered ecosystems.
func Supported() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
