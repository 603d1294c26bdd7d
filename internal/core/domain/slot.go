package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// CacheKeyLength is the number of hex digits kept from the cache key digest.
const CacheKeyLength = 8

// CacheKey is a truncated hex digest over the source bytes and resolved options.
type CacheKey string

// String returns the key as hex.
func (k CacheKey) String() string {
	return string(k)
}

// Slot is the file name of a cached artifact inside the cache directory.
type Slot string

// NewSlot composes "{base}-{page}-{frame}-{key}.{format}", omitting empty selectors.
func NewSlot(baseName string, opts Options, key CacheKey) Slot {
	parts := make([]string, 0, 4)
	parts = append(parts, baseName)
	if page := opts.Page(); page != "" {
		parts = append(parts, Slugify(page))
	}
	if frame := opts.Frame(); frame != "" {
		parts = append(parts, Slugify(frame))
	}
	parts = append(parts, key.String())

	return Slot(strings.Join(parts, "-") + "." + opts.Format().String())
}

// Validate reports ErrInvalidSlot unless s names a file directly inside the
// cache directory.
func (s Slot) Validate() error {
	name := string(s)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return zerr.With(zerr.Wrap(ErrInvalidSlot, "invalid cache slot"), "slot", name)
	}
	return nil
}

// String returns the slot file name.
func (s Slot) String() string {
	return string(s)
}
