package ecosystem_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.cachet.dev/cachet/internal/adapters/ecosystem"
	"go.cachet.dev/cachet/internal/core/domain"
	"go.cachet.dev/cachet/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestAggregator_UsesDetectedPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "pnpm", "store", "path").
		Return("/home/ci/.local/share/pnpm/store/v10", nil)

	logger := mocks.NewMockLogger(ctrl)

	agg := ecosystem.NewAggregatorFor(runner, logger, "linux", "/home/ci")
	ecos, err := ecosystem.Resolve([]string{"pnpm"})
	require.NoError(t, err)

	set := agg.Aggregate(context.Background(), ecos, nil, "")

	assert.True(t, set.Contains("/home/ci/.local/share/pnpm/store/v10"))
	assert.True(t, set.Contains("**/node_modules"))
}

func TestAggregator_FallsBackOnProbeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "pnpm", "store", "path").
		Return("", zerr.New("command failed"))

	logger := mocks.NewMockLogger(ctrl)
	// Failure surfaces at debug level only; it must never escalate.
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	agg := ecosystem.NewAggregatorFor(runner, logger, "linux", "/home/ci")
	ecos, err := ecosystem.Resolve([]string{"pnpm"})
	require.NoError(t, err)

	set := agg.Aggregate(context.Background(), ecos, nil, "")

	assert.True(t, set.Contains(filepath.Join("/home/ci", ".local", "share", "pnpm", "store")))
}

func TestAggregator_FallsBackOnEmptyProbeOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "yarn", "cache", "dir").
		Return("", nil)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	agg := ecosystem.NewAggregatorFor(runner, logger, "darwin", "/Users/ci")
	ecos, err := ecosystem.Resolve([]string{"yarn"})
	require.NoError(t, err)

	set := agg.Aggregate(context.Background(), ecos, nil, "")

	assert.True(t, set.Contains(filepath.Join("/Users/ci", "Library", "Caches", "Yarn")))
}

func TestAggregator_DeduplicatesAcrossEcosystems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "npm", "config", "get", "cache").
		Return("/home/ci/.npm", nil)
	runner.EXPECT().
		Run(gomock.Any(), "yarn", "cache", "dir").
		Return("/home/ci/.cache/yarn", nil)

	logger := mocks.NewMockLogger(ctrl)

	agg := ecosystem.NewAggregatorFor(runner, logger, "linux", "/home/ci")
	ecos, err := ecosystem.Resolve([]string{"npm", "yarn"})
	require.NoError(t, err)

	toolchain := domain.ToolchainFingerprint{"node": "24.11.0"}
	set := agg.Aggregate(context.Background(), ecos, toolchain, "/home/ci/.cachet/tools")

	// npm and yarn both contribute **/node_modules; the tool cache path is
	// shared too. The set length equals the count of distinct paths.
	want := []string{
		"/home/ci/.cache/yarn",
		"/home/ci/.cachet/tools/node/24.11.0",
		"/home/ci/.npm",
		"**/node_modules",
	}
	assert.Equal(t, want, set.Canonical())
	assert.Equal(t, len(want), set.Len())
}

func TestAggregator_ToolInstallCachePerVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "pnpm", "store", "path").
		Return("/home/ci/pnpm-store", nil)

	logger := mocks.NewMockLogger(ctrl)

	agg := ecosystem.NewAggregatorFor(runner, logger, "linux", "/home/ci")
	ecos, err := ecosystem.Resolve([]string{"pnpm"})
	require.NoError(t, err)

	toolchain := domain.ToolchainFingerprint{
		"node":   "24.11.0",
		"python": "3.13.1",
	}
	set := agg.Aggregate(context.Background(), ecos, toolchain, "/opt/tools")

	assert.True(t, set.Contains(filepath.Join("/opt/tools", "node", "24.11.0")))
	assert.True(t, set.Contains(filepath.Join("/opt/tools", "python", "3.13.1")))
}

func TestResolve_UnknownEcosystem(t *testing.T) {
	_, err := ecosystem.Resolve([]string{"cargo"})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrUnknownEcosystem)
}

func TestResolve_Empty(t *testing.T) {
	_, err := ecosystem.Resolve(nil)
	require.ErrorIs(t, err, domain.ErrNoEcosystems)
}
