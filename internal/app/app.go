// Package app implements the application layer for tldr.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/tldr/internal/adapters/esbuild" //nolint:depguard // Host bundler wired in app layer
	"go.trai.ch/tldr/internal/core/domain"
	"go.trai.ch/tldr/internal/core/ports"
	"go.trai.ch/tldr/internal/engine/interceptor"
	"go.trai.ch/tldr/internal/ui/output"
	"go.trai.ch/tldr/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	converter    ports.Converter
	hasher       ports.KeyHasher
	store        ports.ArtifactStore
	prober       ports.ImageProber
	logger       ports.Logger
	tracer       ports.Tracer
	emitter      *esbuild.Emitter
	renders      ports.RenderObserver
	stdout       io.Writer
	stderr       io.Writer
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	converter ports.Converter,
	hasher ports.KeyHasher,
	store ports.ArtifactStore,
	prober ports.ImageProber,
	log ports.Logger,
	tracer ports.Tracer,
	emitter *esbuild.Emitter,
) *App {
	return &App{
		configLoader: loader,
		converter:    converter,
		hasher:       hasher,
		store:        store,
		prober:       prober,
		logger:       log,
		tracer:       tracer,
		emitter:      emitter,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		workDir:      ".",
	}
}

// WithOutput redirects generated module code and status lines.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithRenderObserver sets the source of the converter totals printed in
// verbose mode.
func (a *App) WithRenderObserver(o ports.RenderObserver) *App {
	a.renders = o
	return a
}

// WithWorkDir sets the directory configuration discovery starts from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// SetConfigPath starts configuration discovery from path, a tldr.yaml file
// or the directory holding it.
func (a *App) SetConfigPath(path string) {
	if path == "" {
		return
	}
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		path = filepath.Dir(path)
	}
	a.workDir = path
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// RunOptions are the command line overrides applied on top of tldr.yaml.
type RunOptions struct {
	NoCache  bool
	Verbose  bool
	Metadata bool
}

func (o RunOptions) apply(cfg *domain.Config) {
	if o.NoCache {
		cfg.Plugin.CacheEnabled = false
	}
	if o.Verbose {
		cfg.Plugin.Verbose = true
	}
	if o.Metadata {
		cfg.Plugin.ReturnMetadata = true
	}
}

// Transform rewrites the given import ids in serve mode and prints the
// generated module code in argument order.
func (a *App) Transform(ctx context.Context, ids []string, opts RunOptions) error {
	if len(ids) == 0 {
		return domain.ErrNoImportsSpecified
	}

	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}
	cfg.Host.Mode = domain.ModeServe

	ic := a.newInterceptor(cfg)
	rendersBefore := a.renderSummary()

	results := make([]*domain.Result, len(ids))
	errs := make([]error, len(ids))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for n, id := range ids {
		g.Go(func() error {
			res, err := ic.Transform(ctx, id)
			if err == nil && res == nil {
				err = zerr.With(zerr.Wrap(domain.ErrNotDiagramImport, domain.ErrTransformFailed.Error()), "import", id)
			}
			results[n], errs[n] = res, err
			return nil
		})
	}
	_ = g.Wait()

	status := newStatusPrinter(a.stderr)
	var failed error
	for n, id := range ids {
		if errs[n] != nil {
			status.failure(id)
			a.logger.Error(errs[n])
			failed = errors.Join(failed, errs[n])
			continue
		}
		status.result(id, results[n])
		if _, err := fmt.Fprintln(a.stdout, results[n].ModuleCode()); err != nil {
			return err
		}
	}

	if cfg.Plugin.Verbose {
		status.renders(a.renderSummary().Since(rendersBefore))
	}

	if failed != nil {
		return errors.Join(domain.ErrTransformFailed, failed)
	}
	return nil
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	RunOptions
	Outdir string
	Minify bool
}

// Build bundles the entry points with esbuild in build mode, emitting every
// imported diagram as an asset of the output directory.
func (a *App) Build(ctx context.Context, entries []string, opts BuildOptions) error {
	if len(entries) == 0 {
		return domain.ErrNoEntryPoints
	}

	cfg, err := a.loadConfig(opts.RunOptions)
	if err != nil {
		return err
	}
	cfg.Host.Mode = domain.ModeBuild

	outdir := opts.Outdir
	if outdir == "" {
		outdir = domain.DefaultOutDir
	}

	ic := a.newInterceptor(cfg).WithEmitter(a.emitter)
	rendersBefore := a.renderSummary()
	report, err := esbuild.Bundle(ctx, ic, a.emitter, esbuild.BundleOptions{
		Root:        cfg.Host.Root,
		EntryPoints: entries,
		Outdir:      outdir,
		Minify:      opts.Minify,
	})
	for _, warning := range report.Warnings {
		a.logger.Warn(warning)
	}
	if err != nil {
		return err
	}

	status := newStatusPrinter(a.stderr)
	status.built(len(report.Outputs), len(report.Assets), outdir)
	if cfg.Plugin.Verbose {
		status.renders(a.renderSummary().Since(rendersBefore))
	}
	return nil
}

// Clean removes the rendered image cache directory.
func (a *App) Clean(_ context.Context) error {
	cfg, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	dir := cfg.Host.CacheDir
	a.logger.Info(fmt.Sprintf("removing %s...", dir))
	if err := a.store.Purge(dir); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("removed %s", dir))
	return nil
}

func (a *App) loadConfig(opts RunOptions) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	opts.apply(cfg)
	return cfg, nil
}

func (a *App) renderSummary() ports.RenderSummary {
	if a.renders == nil {
		return ports.RenderSummary{}
	}
	return a.renders.RenderSummary()
}

func (a *App) newInterceptor(cfg *domain.Config) *interceptor.Interceptor {
	return interceptor.New(
		interceptor.NewConfig(cfg),
		a.converter,
		a.hasher,
		a.store,
		a.prober,
		a.logger,
		a.tracer,
	)
}

// statusPrinter writes one styled line per processed import.
type statusPrinter struct {
	w       io.Writer
	success lipgloss.Style
	cached  lipgloss.Style
	failed  lipgloss.Style
	muted   lipgloss.Style
}

func newStatusPrinter(w io.Writer) *statusPrinter {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(output.ColorProfile()))
	return &statusPrinter{
		w:       w,
		success: style.Success.Renderer(r),
		cached:  style.Cached.Renderer(r),
		failed:  r.NewStyle().Foreground(style.Red),
		muted:   style.Muted.Renderer(r),
	}
}

func (p *statusPrinter) result(id string, res *domain.Result) {
	icon, iconStyle := style.Check, p.success
	if res.State == domain.LookupHit {
		icon, iconStyle = style.Dot, p.cached
	}
	_, _ = fmt.Fprintf(p.w, "%s %s %s %s\n",
		iconStyle.Render(icon), id, p.muted.Render(style.Arrow), p.muted.Render(res.ExportPath+" ("+res.State.String()+")"))
}

func (p *statusPrinter) failure(id string) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", p.failed.Render(style.Cross), id)
}

func (p *statusPrinter) built(outputs, assets int, outdir string) {
	_, _ = fmt.Fprintf(p.w, "%s built %d %s and %d %s %s %s\n",
		p.success.Render(style.Check),
		outputs, plural(outputs, "file", "files"),
		assets, plural(assets, "asset", "assets"),
		p.muted.Render(style.Arrow), p.muted.Render(outdir))
}

// renders prints the converter totals. Nothing is printed when every import hit the cache.
func (p *statusPrinter) renders(summary ports.RenderSummary) {
	if summary.Renders == 0 && summary.Failures == 0 {
		return
	}
	line := fmt.Sprintf("rendered %d %s in %s converter time",
		summary.Renders, plural(summary.Renders, "diagram", "diagrams"), summary.Elapsed.Round(time.Millisecond))
	if summary.Failures > 0 {
		line += fmt.Sprintf(", %d failed", summary.Failures)
	}
	_, _ = fmt.Fprintf(p.w, "%s %s\n", p.muted.Render(style.Dot), p.muted.Render(line))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
