package ports

import "go.trai.ch/tldr/internal/core/domain"

// ArtifactStore manages the flat directory of rendered images.
// Every method takes the cache directory it operates on.
type ArtifactStore interface {
	// Path returns the absolute path of a slot inside dir.
	Path(dir string, slot domain.Slot) string

	// Exists reports whether the slot is populated.
	Exists(dir string, slot domain.Slot) (bool, error)

	// Ensure creates dir and its parents when missing.
	Ensure(dir string) error

	// Commit atomically moves a freshly rendered file onto the slot path.
	Commit(dir, renderedPath string, slot domain.Slot) (string, error)

	// Read returns the bytes of a populated slot.
	Read(dir string, slot domain.Slot) ([]byte, error)

	// Size returns the size in bytes of a populated slot.
	Size(dir string, slot domain.Slot) (int64, error)

	// Purge removes dir and everything in it. A missing dir is not an error.
	Purge(dir string) error
}
