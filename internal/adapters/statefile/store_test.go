package statefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.cachet.dev/cachet/internal/adapters/statefile"
	"go.cachet.dev/cachet/internal/core/domain"
)

func TestStore_PutTake(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := statefile.NewStore(path)
	require.NoError(t, err)

	state := domain.LifecycleState{
		ResolvedKey: "",
		PrimaryKey:  "linux-aaaaaaaa-bbbbbbbb-cccccccc",
		CachePaths:  []string{"/home/ci/.npm"},
		Ecosystems:  []string{"npm"},
	}
	require.NoError(t, store.Put("run-1", state))

	got, err := store.Take("run-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, state, *got)
}

func TestStore_TakeIsReadOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := statefile.NewStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Put("run-1", domain.LifecycleState{PrimaryKey: "k"}))

	first, err := store.Take("run-1")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := store.Take("run-1")
	require.NoError(t, err)
	assert.Nil(t, second, "second Take must observe a discarded record")
}

func TestStore_SurvivesProcessBoundary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	writer, err := statefile.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, writer.Put("run-1", domain.LifecycleState{PrimaryKey: "k"}))

	// The save phase runs in a separate process; reload from disk.
	reader, err := statefile.NewStore(path)
	require.NoError(t, err)

	got, err := reader.Take("run-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "k", got.PrimaryKey)
}

func TestStore_TakeMissing(t *testing.T) {
	store, err := statefile.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	got, err := store.Take("absent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := statefile.NewStore(path)
	require.Error(t, err)
}

func TestRunKey_StablePerRun(t *testing.T) {
	t.Setenv("GITHUB_RUN_ID", "4242")

	a := statefile.RunKey("/work/repo")
	b := statefile.RunKey("/work/repo")
	assert.Equal(t, a, b)
	assert.Len(t, a, 16)

	t.Setenv("GITHUB_RUN_ID", "4243")
	assert.NotEqual(t, a, statefile.RunKey("/work/repo"))
}

func TestRunKey_SeparatesWorkspaces(t *testing.T) {
	t.Setenv("GITHUB_RUN_ID", "4242")

	assert.NotEqual(t, statefile.RunKey("/work/a"), statefile.RunKey("/work/b"))
}
