package fs_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tldr/internal/adapters/fs"
	"go.trai.ch/tldr/internal/core/domain"
	"pgregory.net/rapid"
)

const sketchContent = `{"document":"sketch"}`

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func TestKeyHasher_ComputeKey_Golden(t *testing.T) {
	source := writeSource(t, t.TempDir(), "sketch.tldr", sketchContent)
	hasher := fs.NewKeyHasher()

	key, err := hasher.ComputeKey(source, domain.BuiltinOptions())
	require.NoError(t, err)
	assert.Equal(t, domain.CacheKey("d0db1361"), key)

	png := domain.MergeOptions(domain.BuiltinOptions(), domain.Options{
		domain.OptFormat: "png",
		domain.OptScale:  "4",
	})
	key, err = hasher.ComputeKey(source, png)
	require.NoError(t, err)
	assert.Equal(t, domain.CacheKey("16efe49e"), key)
}

func TestKeyHasher_ComputeKey_MissingSource(t *testing.T) {
	hasher := fs.NewKeyHasher()

	_, err := hasher.ComputeKey(filepath.Join(t.TempDir(), "missing.tldr"), domain.BuiltinOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), domain.ErrSourceReadFailed.Error())
}

var keyPattern = regexp.MustCompile(`^[0-9a-f]{8}$`)

// TestKeyHasher_SameInputsSameKey checks that equal content and options always produce the same key.
func TestKeyHasher_SameInputsSameKey(t *testing.T) {
	dir := t.TempDir()
	hasher := fs.NewKeyHasher()

	rapid.Check(t, func(rt *rapid.T) {
		content := rapid.String().Draw(rt, "content")
		opts := domain.Options(rapid.MapOf(
			rapid.SampledFrom(domain.ConverterOptionKeys),
			rapid.StringMatching(`[a-z0-9.-]{0,8}`),
		).Draw(rt, "opts"))

		a := writeSource(t, dir, "a.tldr", content)
		b := writeSource(t, dir, "b.tldr", content)

		keyA, err := hasher.ComputeKey(a, opts)
		require.NoError(rt, err)
		keyB, err := hasher.ComputeKey(b, opts.Clone())
		require.NoError(rt, err)

		assert.Equal(rt, keyA, keyB)
		assert.Regexp(rt, keyPattern, keyA.String())
	})
}

// TestKeyHasher_OptionChangeChangesKey checks that changing a single option value changes the key.
func TestKeyHasher_OptionChangeChangesKey(t *testing.T) {
	source := writeSource(t, t.TempDir(), "sketch.tldr", sketchContent)
	hasher := fs.NewKeyHasher()

	rapid.Check(t, func(rt *rapid.T) {
		base := domain.BuiltinOptions()
		key := rapid.SampledFrom(domain.ConverterOptionKeys).Draw(rt, "key")
		value := rapid.StringMatching(`[a-z0-9]{1,6}`).Draw(rt, "value")
		if base[key] == value {
			rt.Skip("value unchanged")
		}

		changed := base.Clone()
		changed[key] = value

		before, err := hasher.ComputeKey(source, base)
		require.NoError(rt, err)
		after, err := hasher.ComputeKey(source, changed)
		require.NoError(rt, err)

		assert.NotEqual(rt, before, after)
	})
}

// TestKeyHasher_ContentChangeChangesKey checks that changing the source bytes changes the key.
func TestKeyHasher_ContentChangeChangesKey(t *testing.T) {
	dir := t.TempDir()
	hasher := fs.NewKeyHasher()

	rapid.Check(t, func(rt *rapid.T) {
		content := rapid.String().Draw(rt, "content")
		suffix := rapid.StringN(1, 8, -1).Draw(rt, "suffix")

		before, err := hasher.ComputeKey(writeSource(t, dir, "before.tldr", content), domain.BuiltinOptions())
		require.NoError(rt, err)
		after, err := hasher.ComputeKey(writeSource(t, dir, "after.tldr", content+suffix), domain.BuiltinOptions())
		require.NoError(rt, err)

		assert.NotEqual(rt, before, after)
	})
}
