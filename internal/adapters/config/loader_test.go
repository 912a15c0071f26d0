package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.cachet.dev/cachet/internal/adapters/config"
	"go.cachet.dev/cachet/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cachet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeConfig(t, `
platform: linux
branch: main
ecosystems: [pnpm, npm]
toolchain:
  node: 24.11.0
package_manager:
  name: pnpm
  version: 9.1.0
manifests:
  - "packages/*/package.json"
`)

	spec, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "linux", spec.Platform)
	assert.Equal(t, "main", spec.Branch)
	assert.Equal(t, []string{"pnpm", "npm"}, spec.Ecosystems)
	assert.Equal(t, domain.ToolchainFingerprint{"node": "24.11.0"}, spec.Toolchain)
	assert.Equal(t, "pnpm", spec.Manager)
	assert.Equal(t, "9.1.0", spec.ManagerVersion)
	assert.Equal(t, []string{"packages/*/package.json"}, spec.ExtraManifests)
	assert.Equal(t, filepath.Dir(path), spec.WorkDir)
	assert.NotEmpty(t, spec.StatePath)
	assert.NotEmpty(t, spec.StoreDir)
	assert.NotEmpty(t, spec.ToolCacheDir)
}

func TestLoader_PlatformDefaultsToGOOS(t *testing.T) {
	path := writeConfig(t, `
platform: auto
ecosystems: [npm]
`)

	spec, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, runtime.GOOS, spec.Platform)
}

func TestLoader_BranchFromEnvironment(t *testing.T) {
	t.Setenv("GITHUB_REF_NAME", "feature/cache-keys")

	path := writeConfig(t, `
ecosystems: [npm]
`)

	spec, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "feature/cache-keys", spec.Branch)
}

func TestLoader_ConfiguredBranchWinsOverEnvironment(t *testing.T) {
	t.Setenv("GITHUB_REF_NAME", "ci-ref")

	path := writeConfig(t, `
branch: pinned
ecosystems: [npm]
`)

	spec, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pinned", spec.Branch)
}

func TestLoader_ManagerDefaultsToFirstEcosystem(t *testing.T) {
	path := writeConfig(t, `
ecosystems: [yarn, npm]
`)

	spec, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yarn", spec.Manager)
}

func TestLoader_NoEcosystems(t *testing.T) {
	path := writeConfig(t, `
platform: linux
`)

	_, err := config.NewLoader().Load(path)
	require.ErrorIs(t, err, domain.ErrNoEcosystems)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoader_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "ecosystems: [unterminated")

	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
}
