package fs

import (
	"crypto/sha1" //nolint:gosec // Content addressing, not a security boundary
	"encoding/hex"
	"io"
	"os"

	"go.trai.ch/tldr/internal/core/domain"
	"go.trai.ch/tldr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.KeyHasher = (*KeyHasher)(nil)

// KeyHasher computes cache keys from diagram contents and rendering options.
type KeyHasher struct{}

// NewKeyHasher creates a new KeyHasher.
func NewKeyHasher() *KeyHasher {
	return &KeyHasher{}
}

// ComputeKey returns the first 8 hex digits of SHA-1(source bytes || canonical options).
func (h *KeyHasher) ComputeKey(sourcePath string, opts domain.Options) (domain.CacheKey, error) {
	f, err := os.Open(sourcePath) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", sourcePath)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := sha1.New() //nolint:gosec // Content addressing, not a security boundary
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", sourcePath)
	}
	if _, err := hasher.Write(opts.Canonical()); err != nil {
		return "", zerr.Wrap(err, domain.ErrCacheKeyFailed.Error())
	}

	sum := hex.EncodeToString(hasher.Sum(nil))
	return domain.CacheKey(sum[:domain.CacheKeyLength]), nil
}
