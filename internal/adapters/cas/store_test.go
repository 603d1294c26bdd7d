package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tldr/internal/adapters/cas"
	"go.trai.ch/tldr/internal/core/domain"
)

const slot = domain.Slot("sketch-d0db1361.svg")

func TestStore_CommitAndRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".cache", "tldr")
	store := cas.NewStore()

	ok, err := store.Exists(dir, slot)
	require.NoError(t, err)
	assert.False(t, ok, "slot should be empty before the cache dir exists")

	require.NoError(t, store.Ensure(dir))

	rendered := filepath.Join(dir, "tmp-render.svg")
	require.NoError(t, os.WriteFile(rendered, []byte("<svg/>"), domain.PrivateFilePerm))

	path, err := store.Commit(dir, rendered, slot)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sketch-d0db1361.svg"), path)
	assert.NoFileExists(t, rendered)

	ok, err = store.Exists(dir, slot)
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := store.Read(dir, slot)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))

	size, err := store.Size(dir, slot)
	require.NoError(t, err)
	assert.Equal(t, int64(6), size)
}

func TestStore_CommitMissingRender(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore()

	_, err := store.Commit(dir, filepath.Join(dir, "missing.svg"), slot)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrArtifactCommitFailed.Error())
	assert.NoFileExists(t, store.Path(dir, slot))
}

func TestStore_ReadAndSizeMissing(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore()

	_, err := store.Read(dir, slot)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = store.Size(dir, slot)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStore_Purge(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "tldr")
	store := cas.NewStore()

	require.NoError(t, store.Ensure(dir))
	require.NoError(t, os.WriteFile(store.Path(dir, slot), []byte("stale"), domain.PrivateFilePerm))

	require.NoError(t, store.Purge(dir))
	assert.NoDirExists(t, dir)

	// Purging an absent directory is a no-op.
	require.NoError(t, store.Purge(dir))
}
