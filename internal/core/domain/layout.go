package domain

import "path/filepath"

const (
	// SourceExt is the file extension of diagram sources intercepted on import.
	SourceExt = ".tldr"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "tldr.yaml"

	// CacheRootDirName is the default cache root, relative to the project root.
	CacheRootDirName = ".cache"

	// CacheDirName is the subdirectory of the cache root that holds rendered images.
	CacheDirName = "tldr"

	// DefaultAssetsDir is the default output-relative directory for build assets.
	DefaultAssetsDir = "assets"

	// DefaultOutDir is the default bundle output directory, relative to the project root.
	DefaultOutDir = "dist"

	// DefaultBase is the default public base path.
	DefaultBase = "/"

	// DefaultConverterCommand is the default external converter executable.
	DefaultConverterCommand = "tldraw"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultCachePath returns the rendered image cache directory for a project root.
func DefaultCachePath(root string) string {
	return filepath.Join(root, CacheRootDirName, CacheDirName)
}
