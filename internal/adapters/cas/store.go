// Package cas implements the content-addressed artifact store for rendered diagrams.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/tldr/internal/core/domain"
	"go.trai.ch/tldr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactStore = (*Store)(nil)

// Store implements ports.ArtifactStore as a flat directory of slot files.
// Slot names are content addressed, so a populated slot is never rewritten.
type Store struct{}

// NewStore creates a new artifact store.
func NewStore() *Store {
	return &Store{}
}

// Path returns the absolute path of slot inside dir.
func (s *Store) Path(dir string, slot domain.Slot) string {
	return filepath.Join(dir, slot.String())
}

// Exists reports whether the slot file is present.
func (s *Store) Exists(dir string, slot domain.Slot) (bool, error) {
	_, err := os.Stat(s.Path(dir, slot))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, zerr.With(zerr.Wrap(err, domain.ErrCacheLookupFailed.Error()), "slot", slot.String())
}

// Ensure creates the cache directory and its parents.
func (s *Store) Ensure(dir string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "dir", dir)
	}
	return nil
}

// Commit renames renderedPath onto the slot. The rename is atomic on a single
// filesystem, so readers see either no file or the complete artifact.
func (s *Store) Commit(dir, renderedPath string, slot domain.Slot) (string, error) {
	dst := s.Path(dir, slot)
	if err := os.Rename(renderedPath, dst); err != nil {
		_ = os.Remove(renderedPath)
		err = zerr.Wrap(err, domain.ErrArtifactCommitFailed.Error())
		return "", zerr.With(zerr.With(err, "from", renderedPath), "slot", slot.String())
	}
	return dst, nil
}

// Read returns the contents of a populated slot.
func (s *Store) Read(dir string, slot domain.Slot) ([]byte, error) {
	//nolint:gosec // Slot names are derived from cleaned input
	data, err := os.ReadFile(s.Path(dir, slot))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactReadFailed.Error()), "slot", slot.String())
	}
	return data, nil
}

// Size returns the byte size of a populated slot.
func (s *Store) Size(dir string, slot domain.Slot) (int64, error) {
	info, err := os.Stat(s.Path(dir, slot))
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrArtifactStatFailed.Error()), "slot", slot.String())
	}
	return info.Size(), nil
}

// Purge removes the cache directory recursively. A missing directory is not an error.
func (s *Store) Purge(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCachePurgeFailed.Error()), "dir", dir)
	}
	return nil
}
