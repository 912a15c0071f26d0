package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.cachet.dev/cachet/internal/adapters/fs"
	"go.cachet.dev/cachet/internal/adapters/telemetry"
	progrockadapter "go.cachet.dev/cachet/internal/adapters/telemetry/progrock"
	"go.cachet.dev/cachet/internal/app"
	"go.cachet.dev/cachet/internal/core/domain"
	"go.cachet.dev/cachet/internal/core/ports"
	"go.cachet.dev/cachet/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type quietLogger struct{}

func (quietLogger) Debug(string, ...any) {}
func (quietLogger) Info(string, ...any)  {}
func (quietLogger) Warn(string, ...any)  {}
func (quietLogger) Error(error)          {}

// stubAggregator avoids probing real package managers in tests.
type stubAggregator struct {
	paths []string
}

func (s *stubAggregator) Aggregate(_ context.Context, _ []ports.Ecosystem, _ domain.ToolchainFingerprint, _ string) *domain.CachePathSet {
	return domain.NewCachePathSet(s.paths...)
}

func testRunSpec(t *testing.T) (*domain.RunSpec, string) {
	t.Helper()

	workDir := t.TempDir()
	cacheDir := filepath.Join(workDir, "pnpm-store")
	require.NoError(t, os.MkdirAll(cacheDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "blob"), []byte("payload"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "pnpm-lock.yaml"), []byte("lockfileVersion: 9"), 0o644))

	return &domain.RunSpec{
		Platform:       "linux",
		Branch:         "main",
		Ecosystems:     []string{"pnpm"},
		Toolchain:      domain.ToolchainFingerprint{"node": "24.11.0"},
		Manager:        "pnpm",
		ManagerVersion: "9.1.0",
		WorkDir:        workDir,
		StatePath:      filepath.Join(workDir, ".cachet", "state.json"),
		StoreDir:       filepath.Join(workDir, ".cachet", "store"),
		ToolCacheDir:   filepath.Join(workDir, ".cachet", "tools"),
	}, cacheDir
}

func newTestApp(t *testing.T, loader ports.ConfigLoader, cachePaths ...string) *app.App {
	t.Helper()

	log := quietLogger{}
	return app.New(
		loader,
		&stubAggregator{paths: cachePaths},
		fs.NewDiscoverer(log),
		fs.NewContentHasher(log),
		log,
		telemetry.NewNoOpTracer(),
	)
}

func TestApp_RestoreThenSave_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)

	spec, cacheDir := testRunSpec(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("cachet.yaml").Return(spec, nil).Times(3)

	a := newTestApp(t, loader, cacheDir)
	ctx := context.Background()

	restore, err := a.Restore(ctx, "cachet.yaml")
	require.NoError(t, err)
	assert.Equal(t, domain.HitMiss, restore.Hit)
	assert.Contains(t, restore.Manifests[0], "pnpm-lock.yaml")

	save, err := a.Save(ctx, "cachet.yaml")
	require.NoError(t, err)
	require.True(t, save.Saved)
	assert.Equal(t, restore.PrimaryKey, save.Key)

	// A second run with identical inputs restores the saved entry exactly.
	again, err := a.Restore(ctx, "cachet.yaml")
	require.NoError(t, err)
	assert.Equal(t, domain.HitExact, again.Hit)
	assert.Equal(t, restore.PrimaryKey, again.MatchedKey)
}

func TestApp_Save_WithoutRestoreSkips(t *testing.T) {
	ctrl := gomock.NewController(t)

	spec, cacheDir := testRunSpec(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("cachet.yaml").Return(spec, nil)

	a := newTestApp(t, loader, cacheDir)

	save, err := a.Save(context.Background(), "cachet.yaml")
	require.NoError(t, err)
	assert.False(t, save.Saved)
	assert.NotEmpty(t, save.Reason)
}

func TestApp_Restore_ConfigError(t *testing.T) {
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("missing.yaml").Return(nil, zerr.New("no such file"))

	a := newTestApp(t, loader)

	_, err := a.Restore(context.Background(), "missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestComponents_CloseHandlesBothTracerKinds(t *testing.T) {
	// The noop tracer holds no resources.
	noop := app.NewComponents(nil, quietLogger{}, telemetry.NewNoOpTracer())
	require.NoError(t, noop.Close())

	// The progrock recorder does, and must be released on shutdown.
	recording := app.NewComponents(nil, quietLogger{}, progrockadapter.New())
	require.NoError(t, recording.Close())
}

func TestApp_Restore_UnknownEcosystem(t *testing.T) {
	ctrl := gomock.NewController(t)

	spec, _ := testRunSpec(t)
	spec.Ecosystems = []string{"cargo"}
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("cachet.yaml").Return(spec, nil)

	a := newTestApp(t, loader)

	_, err := a.Restore(context.Background(), "cachet.yaml")
	require.ErrorIs(t, err, domain.ErrUnknownEcosystem)
}
