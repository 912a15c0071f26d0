// Package app implements the application layer for cachet.
package app

import (
	"context"

	"go.cachet.dev/cachet/internal/adapters/blobdir"
	"go.cachet.dev/cachet/internal/adapters/ecosystem"
	"go.cachet.dev/cachet/internal/adapters/statefile"
	"go.cachet.dev/cachet/internal/core/domain"
	"go.cachet.dev/cachet/internal/core/ports"
	"go.cachet.dev/cachet/internal/engine/lifecycle"
	"go.trai.ch/zerr"
)

// App represents the main application logic. It loads the run configuration,
// builds the per-run stores and hands both cache phases to the lifecycle
// coordinator.
type App struct {
	configLoader ports.ConfigLoader
	aggregator   lifecycle.PathAggregator
	discoverer   lifecycle.ManifestDiscoverer
	hasher       lifecycle.ManifestHasher
	logger       ports.Logger
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	aggregator lifecycle.PathAggregator,
	discoverer lifecycle.ManifestDiscoverer,
	hasher lifecycle.ManifestHasher,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		aggregator:   aggregator,
		discoverer:   discoverer,
		hasher:       hasher,
		logger:       logger,
		tracer:       tracer,
	}
}

// Restore runs the pre-build phase for the given configuration file.
func (a *App) Restore(ctx context.Context, configPath string) (*lifecycle.RestoreReport, error) {
	spec, ecosystems, coordinator, err := a.prepare(configPath)
	if err != nil {
		return nil, err
	}
	return coordinator.Restore(ctx, spec, ecosystems), nil
}

// Save runs the post-build phase for the given configuration file.
func (a *App) Save(ctx context.Context, configPath string) (*lifecycle.SaveReport, error) {
	spec, _, coordinator, err := a.prepare(configPath)
	if err != nil {
		return nil, err
	}
	return coordinator.Save(ctx, spec), nil
}

// prepare loads the run configuration and assembles a coordinator around the
// run's state file and blob store. Both stores are path dependent, so they
// cannot outlive a single run.
func (a *App) prepare(configPath string) (*domain.RunSpec, []ports.Ecosystem, *lifecycle.Coordinator, error) {
	spec, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, nil, nil, zerr.Wrap(err, "failed to load configuration")
	}
	if spec.RunKey == "" {
		spec.RunKey = statefile.RunKey(spec.WorkDir)
	}

	ecosystems, err := ecosystem.Resolve(spec.Ecosystems)
	if err != nil {
		return nil, nil, nil, zerr.Wrap(err, "failed to resolve ecosystems")
	}

	states, err := statefile.NewStore(spec.StatePath)
	if err != nil {
		return nil, nil, nil, zerr.Wrap(err, "failed to open state store")
	}

	store, err := blobdir.NewStore(spec.StoreDir, a.logger)
	if err != nil {
		return nil, nil, nil, zerr.Wrap(err, "failed to open cache store")
	}

	coordinator := lifecycle.NewCoordinator(
		a.aggregator, a.discoverer, a.hasher, store, states, a.logger, a.tracer,
	)
	return spec, ecosystems, coordinator, nil
}
