package domain

// Mode is the host build tool command the interceptor runs under.
type Mode string

const (
	// ModeServe serves artifacts straight from the cache directory.
	ModeServe Mode = "serve"
	// ModeBuild emits artifacts as build assets.
	ModeBuild Mode = "build"
)

// PluginConfig is the user-facing plugin configuration.
type PluginConfig struct {
	// CacheEnabled keeps rendered images between requests. When false the whole
	// cache directory is removed before every request.
	CacheEnabled bool
	// Defaults are option values applied beneath per-import query parameters.
	Defaults Options
	// Verbose reports cache hits, misses and render statistics.
	Verbose bool
	// ReturnMetadata exports {format, height, src, width} instead of a path string.
	ReturnMetadata bool
}

// DefaultPluginConfig returns the plugin configuration used when nothing is configured.
func DefaultPluginConfig() PluginConfig {
	return PluginConfig{
		CacheEnabled: true,
		Defaults:     Options{},
	}
}

// HostConfig is the build configuration supplied by the host before any import is processed.
type HostConfig struct {
	// Root is the absolute project root. Serve-mode paths are relative to it.
	Root string
	// CacheDir is the absolute directory holding cache artifacts.
	CacheDir string
	// AssetsDir is the output-relative directory for build assets.
	AssetsDir string
	// Base is the public base path build assets are served under.
	Base string
	// Mode selects serve or build behavior.
	Mode Mode
}

// IsBuild reports whether the host is producing a production build.
func (h HostConfig) IsBuild() bool {
	return h.Mode == ModeBuild
}

// Config is the complete resolved configuration of a run.
type Config struct {
	Plugin PluginConfig
	Host   HostConfig
	// Converter is the external converter command line, executable first.
	Converter []string
}
