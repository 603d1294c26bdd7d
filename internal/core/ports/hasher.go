package ports

import "go.trai.ch/tldr/internal/core/domain"

// KeyHasher computes cache keys for diagram renders.
type KeyHasher interface {
	// ComputeKey digests the full contents of the source file together with the
	// canonical serialization of the resolved options.
	ComputeKey(sourcePath string, opts domain.Options) (domain.CacheKey, error)
}
