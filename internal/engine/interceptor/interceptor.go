// Package interceptor rewrites diagram imports into references to rendered images,
// backed by a content-addressed cache directory.
package interceptor

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.trai.ch/tldr/internal/core/domain"
	"go.trai.ch/tldr/internal/core/ports"
	"go.trai.ch/zerr"
)

// Config is the resolved configuration of one run. It is fixed before the
// first import is processed and never changes afterwards.
type Config struct {
	Host   domain.HostConfig
	Plugin domain.PluginConfig
	// Converter overrides the converter command line when set.
	Converter []string
}

// NewConfig builds a Config from a loaded domain configuration.
func NewConfig(cfg *domain.Config) Config {
	return Config{
		Host:      cfg.Host,
		Plugin:    cfg.Plugin,
		Converter: cfg.Converter,
	}
}

// Interceptor turns .tldr imports into generated module code.
// It is safe for concurrent use.
type Interceptor struct {
	cfg       Config
	converter ports.Converter
	hasher    ports.KeyHasher
	store     ports.ArtifactStore
	prober    ports.ImageProber
	logger    ports.Logger
	tracer    ports.Tracer
	emitter   ports.AssetEmitter

	// dirMu is held exclusively while the cache directory is purged and shared
	// while a request reads or writes inside it.
	dirMu sync.RWMutex
	slots slotLocks
}

// New creates an Interceptor for one run.
func New(
	cfg Config,
	converter ports.Converter,
	hasher ports.KeyHasher,
	store ports.ArtifactStore,
	prober ports.ImageProber,
	logger ports.Logger,
	tracer ports.Tracer,
) *Interceptor {
	return &Interceptor{
		cfg:       cfg,
		converter: converter,
		hasher:    hasher,
		store:     store,
		prober:    prober,
		logger:    logger,
		tracer:    tracer,
	}
}

// WithEmitter sets the host's asset emitter. It is required in build mode.
func (i *Interceptor) WithEmitter(emitter ports.AssetEmitter) *Interceptor {
	i.emitter = emitter
	return i
}

// Config returns the run configuration.
func (i *Interceptor) Config() Config {
	return i.cfg
}

// Matches reports whether id is an import this interceptor handles.
func (i *Interceptor) Matches(id string) bool {
	_, ok := domain.ParseSourceRef(id)
	return ok
}

// Transform handles one import id. It returns nil, nil when id does not
// reference a .tldr file, leaving the import to other handlers.
func (i *Interceptor) Transform(ctx context.Context, id string) (*domain.Result, error) {
	ref, ok := domain.ParseSourceRef(id)
	if !ok {
		return nil, nil
	}

	ctx, span := i.tracer.Start(ctx, ports.SpanTransform, ports.WithAttribute("tldr.source", ref.Path))
	defer span.End()

	res, err := i.transform(ctx, ref)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTransformFailed.Error()), "source", ref.Path)
	}

	span.SetAttribute("tldr.slot", res.Slot.String())
	span.SetAttribute("tldr.cache_state", res.State.String())
	return res, nil
}

func (i *Interceptor) transform(ctx context.Context, ref domain.SourceRef) (*domain.Result, error) {
	opts, err := domain.ResolveOptions(i.cfg.Plugin.Defaults, ref.Options(), i.cfg.Plugin.ReturnMetadata)
	if err != nil {
		return nil, err
	}

	if i.cfg.Host.IsBuild() && i.emitter == nil {
		return nil, domain.ErrNoAssetEmitter
	}

	source := i.sourcePath(ref)
	key, err := i.hasher.ComputeKey(source, opts)
	if err != nil {
		return nil, err
	}
	slot := domain.NewSlot(ref.BaseName(), opts, key)
	if err := slot.Validate(); err != nil {
		return nil, err
	}

	if !i.cfg.Plugin.CacheEnabled {
		if err := i.purge(); err != nil {
			return nil, err
		}
	}

	i.dirMu.RLock()
	defer i.dirMu.RUnlock()

	state, artifact, err := i.lookup(ctx, source, opts, slot)
	if err != nil {
		return nil, err
	}

	res := &domain.Result{
		Source:       ref,
		Options:      opts,
		Key:          key,
		Slot:         slot,
		State:        state,
		ArtifactPath: artifact,
	}

	if i.cfg.Host.IsBuild() {
		res.ExportPath, err = i.emit(slot)
	} else {
		res.ExportPath = "/" + i.displayPath(artifact)
	}
	if err != nil {
		return nil, err
	}

	if i.cfg.Plugin.ReturnMetadata {
		dims, err := i.prober.Dimensions(artifact, opts.Format())
		if err != nil {
			return nil, err
		}
		res.Metadata = &domain.Metadata{
			Format: opts.Format(),
			Height: dims.Height,
			Src:    res.ExportPath,
			Width:  dims.Width,
		}
	}

	return res, nil
}

// purge removes the whole cache directory, waiting for in-flight requests to finish.
func (i *Interceptor) purge() error {
	i.dirMu.Lock()
	defer i.dirMu.Unlock()
	return i.store.Purge(i.cfg.Host.CacheDir)
}

// lookup returns the slot's artifact, rendering it first when the slot is empty.
// Concurrent lookups of the same slot render once; the others observe a hit.
func (i *Interceptor) lookup(
	ctx context.Context,
	source string,
	opts domain.Options,
	slot domain.Slot,
) (domain.LookupState, string, error) {
	unlock := i.slots.lock(slot)
	defer unlock()

	dir := i.cfg.Host.CacheDir
	artifact := i.store.Path(dir, slot)

	exists, err := i.store.Exists(dir, slot)
	if err != nil {
		return domain.LookupMiss, "", err
	}
	if exists {
		if i.cfg.Plugin.Verbose {
			i.logger.Info(fmt.Sprintf("Cache found:\n  For:\t%q\n  At:\t%q",
				i.displayPath(source), i.displayPath(artifact)))
		}
		return domain.LookupHit, artifact, nil
	}

	start := time.Now()
	if i.cfg.Plugin.Verbose && i.cfg.Plugin.CacheEnabled {
		i.logger.Info(fmt.Sprintf("Cache missed:\n  For:\t%q\n  At:\t%q",
			i.displayPath(source), i.displayPath(artifact)))
	}

	artifact, err = i.render(ctx, source, opts, slot)
	if err != nil {
		return domain.LookupMiss, "", err
	}

	if i.cfg.Plugin.Verbose {
		i.logger.Info(fmt.Sprintf("Finished generating image:\n  From:\t%q\n  To:\t%q\n  Size:\t%s\n  Time:\t%s",
			i.displayPath(source), i.displayPath(artifact), i.sizeReport(slot),
			time.Since(start).Round(time.Millisecond)))
	}

	return domain.LookupMiss, artifact, nil
}

// render runs the converter into the cache directory under a unique temporary
// name and moves the first output onto the slot. The slot path either holds a
// complete artifact or nothing.
func (i *Interceptor) render(
	ctx context.Context,
	source string,
	opts domain.Options,
	slot domain.Slot,
) (string, error) {
	ctx, span := i.tracer.Start(ctx, ports.SpanRender, ports.WithAttribute("tldr.slot", slot.String()))
	defer span.End()

	dir := i.cfg.Host.CacheDir
	if err := i.store.Ensure(dir); err != nil {
		span.RecordError(err)
		return "", err
	}

	outputs, err := i.converter.Convert(ctx, domain.RenderRequest{
		Source:    source,
		OutputDir: dir,
		Name:      uuid.NewString(),
		Options:   opts,
		Command:   i.cfg.Converter,
	})
	if err == nil && len(outputs) == 0 {
		err = zerr.Wrap(domain.ErrConverterNoOutput, domain.ErrConversionFailed.Error())
	}
	if err != nil {
		span.RecordError(err)
		return "", zerr.With(err, "slot", slot.String())
	}

	artifact, err := i.store.Commit(dir, outputs[0], slot)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return artifact, nil
}

// emit registers the artifact as a build asset and returns its public path.
func (i *Interceptor) emit(slot domain.Slot) (string, error) {
	data, err := i.store.Read(i.cfg.Host.CacheDir, slot)
	if err != nil {
		return "", err
	}

	fileName := path.Join(i.cfg.Host.AssetsDir, slot.String())
	if err := i.emitter.EmitAsset(domain.Asset{FileName: fileName, Source: data}); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrAssetEmitFailed.Error()), "asset", fileName)
	}

	return path.Join(i.cfg.Host.Base, fileName), nil
}

// sizeReport formats the artifact size. A failed stat is logged and reported
// as "unknown" rather than failing the request.
func (i *Interceptor) sizeReport(slot domain.Slot) string {
	size, err := i.store.Size(i.cfg.Host.CacheDir, slot)
	if err != nil {
		i.logger.Error(err)
		return "unknown"
	}
	return humanize.Bytes(uint64(size)) //nolint:gosec // sizes are never negative
}

// sourcePath resolves the import path against the project root.
func (i *Interceptor) sourcePath(ref domain.SourceRef) string {
	p := filepath.FromSlash(ref.Path)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(i.cfg.Host.Root, p)
}

// displayPath returns p relative to the project root, slash separated.
func (i *Interceptor) displayPath(p string) string {
	rel, err := filepath.Rel(i.cfg.Host.Root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}
