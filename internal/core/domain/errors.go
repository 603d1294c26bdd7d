package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedTargetFormat is returned when metadata output is requested for the source format itself.
	ErrUnsupportedTargetFormat = zerr.New("tldr format is not supported as an export target")

	// ErrUnknownFormat is returned when an import requests a format other than svg, png or tldr.
	ErrUnknownFormat = zerr.New("unsupported image format")

	// ErrInvalidSlot is returned when a cache slot is not a plain file name.
	ErrInvalidSlot = zerr.New("cache slot must be a plain file name")

	// ErrNotDiagramImport is returned when an import id does not reference a .tldr file.
	ErrNotDiagramImport = zerr.New("import does not reference a tldr file")

	// ErrSourceReadFailed is returned when the source diagram cannot be read for hashing.
	ErrSourceReadFailed = zerr.New("failed to read source diagram")

	// ErrCacheKeyFailed is returned when the cache key digest cannot be computed.
	ErrCacheKeyFailed = zerr.New("failed to compute cache key")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheLookupFailed is returned when a cache slot cannot be checked.
	ErrCacheLookupFailed = zerr.New("failed to check cache slot")

	// ErrCachePurgeFailed is returned when the cache directory cannot be removed.
	ErrCachePurgeFailed = zerr.New("failed to remove cache directory")

	// ErrArtifactCommitFailed is returned when a rendered file cannot be moved into its cache slot.
	ErrArtifactCommitFailed = zerr.New("failed to move rendered image into cache")

	// ErrArtifactReadFailed is returned when a cached artifact cannot be read.
	ErrArtifactReadFailed = zerr.New("failed to read cached image")

	// ErrArtifactStatFailed is returned when a cached artifact cannot be stated.
	ErrArtifactStatFailed = zerr.New("failed to stat cached image")

	// ErrConversionFailed is returned when the external converter fails.
	ErrConversionFailed = zerr.New("failed to convert tldr file to image")

	// ErrConverterNoOutput is returned when the converter exits cleanly without reporting a file.
	ErrConverterNoOutput = zerr.New("converter produced no output file")

	// ErrConverterNotConfigured is returned when the converter command is empty.
	ErrConverterNotConfigured = zerr.New("converter command is not configured")

	// ErrProbeFailed is returned when image dimensions cannot be read.
	ErrProbeFailed = zerr.New("failed to read image dimensions")

	// ErrUnsupportedProbeFormat is returned when dimensions are requested for an unknown format.
	ErrUnsupportedProbeFormat = zerr.New("cannot read dimensions for image format")

	// ErrAssetEmitFailed is returned when a build asset cannot be registered with the host.
	ErrAssetEmitFailed = zerr.New("failed to emit build asset")

	// ErrNoAssetEmitter is returned in build mode when no asset emitter is configured.
	ErrNoAssetEmitter = zerr.New("build mode requires an asset emitter")

	// ErrInvalidAssetName is returned when an asset name is absolute or leaves the output directory.
	ErrInvalidAssetName = zerr.New("asset name must be relative to the output directory")

	// ErrAssetWriteFailed is returned when an emitted asset cannot be written to the output directory.
	ErrAssetWriteFailed = zerr.New("failed to write build asset")

	// ErrBundleFailed is returned when the host bundler reports errors.
	ErrBundleFailed = zerr.New("bundle failed")

	// ErrNoEntryPoints is returned when the build command is given no entry points.
	ErrNoEntryPoints = zerr.New("no entry points specified")

	// ErrNoImportsSpecified is returned when the transform command is given no import ids.
	ErrNoImportsSpecified = zerr.New("no imports specified")

	// ErrCacheDirOutsideRoot is returned when the configured cache directory is not below the project root.
	ErrCacheDirOutsideRoot = zerr.New("cache directory must be inside the project root")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrTransformFailed is returned when an import cannot be transformed.
	ErrTransformFailed = zerr.New("transform failed")
)
