// Package config provides the configuration loader for tldr.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/tldr/internal/core/domain"
	"go.trai.ch/tldr/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the configuration schema version this loader understands.
const SupportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds tldr.yaml in cwd or its parents and returns the resolved configuration.
// Without a configuration file the defaults apply, rooted at cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "cwd", cwd)
	}

	configPath, found := findConfiguration(absCwd)
	if !found {
		return defaultConfig(absCwd), nil
	}

	var file Tldrfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", domain.ConfigFileName, file.Version, SupportedVersion))
	}

	cfg, err := buildConfig(configPath, &file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func defaultConfig(root string) *domain.Config {
	return &domain.Config{
		Plugin: domain.DefaultPluginConfig(),
		Host: domain.HostConfig{
			Root:      root,
			CacheDir:  domain.DefaultCachePath(root),
			AssetsDir: domain.DefaultAssetsDir,
			Base:      domain.DefaultBase,
			Mode:      domain.ModeServe,
		},
		Converter: []string{domain.DefaultConverterCommand},
	}
}

func buildConfig(configPath string, file *Tldrfile) (*domain.Config, error) {
	root := resolveRoot(configPath, file.Root)
	cfg := defaultConfig(root)

	if file.CacheEnabled != nil {
		cfg.Plugin.CacheEnabled = *file.CacheEnabled
	}
	if file.Verbose != nil {
		cfg.Plugin.Verbose = *file.Verbose
	}
	if file.ReturnMetadata != nil {
		cfg.Plugin.ReturnMetadata = *file.ReturnMetadata
	}
	if file.Defaults != nil {
		cfg.Plugin.Defaults = file.Defaults.toOptions()
		if format := cfg.Plugin.Defaults.Format(); !format.Valid() {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "invalid defaults"), "format", format.String())
		}
	}

	if file.CacheDir != "" {
		cacheDir := filepath.Join(resolvePath(root, file.CacheDir), domain.CacheDirName)
		if !within(root, cacheDir) {
			return nil, zerr.With(zerr.Wrap(domain.ErrCacheDirOutsideRoot, "invalid cacheDir"), "cache_dir", cacheDir)
		}
		cfg.Host.CacheDir = cacheDir
	}
	if file.AssetsDir != "" {
		cfg.Host.AssetsDir = filepath.ToSlash(filepath.Clean(file.AssetsDir))
	}
	if file.Base != "" {
		cfg.Host.Base = file.Base
	}
	if len(file.Converter) > 0 {
		cfg.Converter = file.Converter
	}

	return cfg, nil
}

// within reports whether path is root or lies below it. Serve-mode export paths
// are root relative, so the cache must not leave the root.
func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// toOptions returns only the options that are set. Numbers and booleans are
// rendered the way they would appear in an import query.
func (d *ImageOptionsDTO) toOptions() domain.Options {
	opts := domain.Options{}
	setString := func(key string, v *string) {
		if v != nil {
			opts[key] = *v
		}
	}
	setFloat := func(key string, v *float64) {
		if v != nil {
			opts[key] = strconv.FormatFloat(*v, 'f', -1, 64)
		}
	}
	setBool := func(key string, v *bool) {
		if v != nil {
			opts[key] = strconv.FormatBool(*v)
		}
	}

	setString(domain.OptFormat, d.Format)
	setString(domain.OptPage, d.Page)
	setString(domain.OptFrame, d.Frame)
	setFloat(domain.OptScale, d.Scale)
	setFloat(domain.OptPadding, d.Padding)
	setBool(domain.OptDark, d.Dark)
	setBool(domain.OptTransparent, d.Transparent)
	setBool(domain.OptStripStyle, d.StripStyle)

	return opts
}

func resolveRoot(configPath, configuredRoot string) string {
	return resolvePath(filepath.Dir(configPath), configuredRoot)
}

func resolvePath(base, configured string) string {
	if configured == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(base, configured))
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
