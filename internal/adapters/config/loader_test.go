package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tldr/internal/adapters/config"
	"go.trai.ch/tldr/internal/core/domain"
	"go.trai.ch/tldr/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), domain.PrivateFilePerm))
}

func TestLoader_Load_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	rootDir := t.TempDir()

	cfg, err := loader.Load(rootDir)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPluginConfig(), cfg.Plugin)
	assert.Equal(t, domain.HostConfig{
		Root:      rootDir,
		CacheDir:  filepath.Join(rootDir, ".cache", "tldr"),
		AssetsDir: "assets",
		Base:      "/",
		Mode:      domain.ModeServe,
	}, cfg.Host)
	assert.Equal(t, []string{"tldraw"}, cfg.Converter)
}

func TestLoader_Load_FullFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
version: "1"
cacheEnabled: false
verbose: true
returnMetadata: true
cacheDir: node_modules/.vite
assetsDir: static/img
base: /docs/
defaults:
  format: png
  scale: 2
  padding: 12.5
  dark: true
  stripStyle: false
converter: ["npx", "@kitschpatrol/tldraw-cli"]
`)

	cfg, err := loader.Load(rootDir)
	require.NoError(t, err)

	assert.Equal(t, domain.PluginConfig{
		CacheEnabled:   false,
		Verbose:        true,
		ReturnMetadata: true,
		Defaults: domain.Options{
			domain.OptFormat:     "png",
			domain.OptScale:      "2",
			domain.OptPadding:    "12.5",
			domain.OptDark:       "true",
			domain.OptStripStyle: "false",
		},
	}, cfg.Plugin)
	assert.Equal(t, filepath.Join(rootDir, "node_modules", ".vite", "tldr"), cfg.Host.CacheDir)
	assert.Equal(t, "static/img", cfg.Host.AssetsDir)
	assert.Equal(t, "/docs/", cfg.Host.Base)
	assert.Equal(t, []string{"npx", "@kitschpatrol/tldraw-cli"}, cfg.Converter)
}

func TestLoader_Load_Discovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "verbose: true\n")

	nested := filepath.Join(rootDir, "src", "diagrams")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	cfg, err := loader.Load(nested)
	require.NoError(t, err)

	assert.Equal(t, rootDir, cfg.Host.Root, "root should be the directory holding the config file")
	assert.Equal(t, domain.DefaultCachePath(rootDir), cfg.Host.CacheDir)
	assert.True(t, cfg.Plugin.Verbose)
	assert.True(t, cfg.Plugin.CacheEnabled, "unset cacheEnabled keeps its default")
}

func TestLoader_Load_RelativeRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	rootDir := t.TempDir()
	configDir := filepath.Join(rootDir, "config")
	require.NoError(t, os.MkdirAll(configDir, domain.DirPerm))
	createFile(t, configDir, domain.ConfigFileName, "root: ..\n")

	cfg, err := loader.Load(configDir)
	require.NoError(t, err)
	assert.Equal(t, rootDir, cfg.Host.Root)
}

func TestLoader_Load_UnknownVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(`tldr.yaml declares version "2", expected "1"`).Times(1)

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "version: \"2\"\n")

	_, err := config.NewLoader(mockLogger).Load(rootDir)
	require.NoError(t, err)
}

func TestLoader_Load_ParseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "defaults:\n  scale: [1, 2\n")

	_, err := loader.Load(rootDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_TypeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "cacheEnabled: sometimes\n")

	_, err := loader.Load(rootDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_CacheDirOutsideRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	parent := t.TempDir()
	rootDir := filepath.Join(parent, "site")
	require.NoError(t, os.MkdirAll(rootDir, domain.DirPerm))

	for _, cacheDir := range []string{"../shared-cache", filepath.Join(parent, "elsewhere")} {
		createFile(t, rootDir, domain.ConfigFileName, "cacheDir: "+cacheDir+"\n")

		_, err := loader.Load(rootDir)
		require.ErrorIs(t, err, domain.ErrCacheDirOutsideRoot, cacheDir)
	}
}

func TestLoader_Load_CacheDirInsideRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "cacheDir: build/../tmp\n")

	cfg, err := loader.Load(rootDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(rootDir, "tmp", domain.CacheDirName), cfg.Host.CacheDir)
}

func TestLoader_Load_UnknownDefaultFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "defaults:\n  format: ../../out\n")

	_, err := loader.Load(rootDir)
	require.ErrorIs(t, err, domain.ErrUnknownFormat)
}
