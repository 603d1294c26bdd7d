package esbuild

import (
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/tldr/internal/core/domain"
	"go.trai.ch/tldr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AssetEmitter = (*Emitter)(nil)

// Emitter collects build assets during a bundle and writes them into the
// output directory once the bundle succeeds.
type Emitter struct {
	mu     sync.Mutex
	assets map[string][]byte
}

// NewEmitter creates an empty Emitter.
func NewEmitter() *Emitter {
	return &Emitter{assets: make(map[string][]byte)}
}

// EmitAsset records an asset. Emitting the same name again replaces its content.
func (e *Emitter) EmitAsset(asset domain.Asset) error {
	name := path.Clean(asset.FileName)
	if name == "." || path.IsAbs(name) || name == ".." || strings.HasPrefix(name, "../") {
		return domain.ErrInvalidAssetName
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.assets[name] = asset.Source
	return nil
}

// Assets returns the recorded assets sorted by file name.
func (e *Emitter) Assets() []domain.Asset {
	e.mu.Lock()
	defer e.mu.Unlock()

	names := make([]string, 0, len(e.assets))
	for name := range e.assets {
		names = append(names, name)
	}
	slices.Sort(names)

	assets := make([]domain.Asset, 0, len(names))
	for _, name := range names {
		assets = append(assets, domain.Asset{FileName: name, Source: e.assets[name]})
	}
	return assets
}

// Reset drops every recorded asset.
func (e *Emitter) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	clear(e.assets)
}

// Flush writes the recorded assets below outdir and returns the written paths.
func (e *Emitter) Flush(outdir string) ([]string, error) {
	assets := e.Assets()
	written := make([]string, 0, len(assets))

	for _, asset := range assets {
		dst := filepath.Join(outdir, filepath.FromSlash(asset.FileName))
		if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
			return written, zerr.With(zerr.Wrap(err, domain.ErrAssetWriteFailed.Error()), "asset", asset.FileName)
		}
		if err := os.WriteFile(dst, asset.Source, domain.FilePerm); err != nil { //nolint:gosec // Assets are public build output
			return written, zerr.With(zerr.Wrap(err, domain.ErrAssetWriteFailed.Error()), "asset", asset.FileName)
		}
		written = append(written, dst)
	}

	return written, nil
}
