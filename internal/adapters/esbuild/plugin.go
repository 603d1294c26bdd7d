// Package esbuild hosts the interceptor inside an esbuild bundle.
package esbuild

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/tldr/internal/core/domain"
)

const (
	// PluginName is the name the plugin reports to esbuild.
	PluginName = "tldr"

	// Namespace is the esbuild namespace resolved diagram imports are loaded from.
	Namespace = "tldraw"

	// importFilter matches import paths of .tldr files, with or without a query.
	importFilter = `\.tldr(\?.*)?$`
)

// Transformer rewrites one import id into generated module code.
type Transformer interface {
	Transform(ctx context.Context, id string) (*domain.Result, error)
}

// NewPlugin returns an esbuild plugin that replaces .tldr imports with the
// modules produced by transformer. Assets emitted during the bundle are
// written to the output directory after a successful build with Write set.
func NewPlugin(ctx context.Context, transformer Transformer, emitter *Emitter) api.Plugin {
	return api.Plugin{
		Name: PluginName,
		Setup: func(build api.PluginBuild) {
			build.OnStart(func() (api.OnStartResult, error) {
				emitter.Reset()
				return api.OnStartResult{}, nil
			})

			build.OnResolve(api.OnResolveOptions{Filter: importFilter},
				func(args api.OnResolveArgs) (api.OnResolveResult, error) {
					return resolve(args), nil
				})

			build.OnLoad(api.OnLoadOptions{Filter: `.*`, Namespace: Namespace},
				func(args api.OnLoadArgs) (api.OnLoadResult, error) {
					return load(ctx, transformer, args)
				})

			build.OnEnd(func(result *api.BuildResult) (api.OnEndResult, error) {
				opts := build.InitialOptions
				if len(result.Errors) > 0 || !opts.Write || opts.Outdir == "" {
					return api.OnEndResult{}, nil
				}
				_, err := emitter.Flush(opts.Outdir)
				return api.OnEndResult{}, err
			})
		},
	}
}

// resolve maps an import onto an absolute path in the plugin namespace,
// carrying the query as the path suffix.
func resolve(args api.OnResolveArgs) api.OnResolveResult {
	p, query, hasQuery := strings.Cut(args.Path, "?")
	if !filepath.IsAbs(p) {
		p = filepath.Join(args.ResolveDir, p)
	}

	res := api.OnResolveResult{
		Path:      p,
		Namespace: Namespace,
	}
	if hasQuery {
		res.Suffix = "?" + query
	}
	return res
}

func load(ctx context.Context, transformer Transformer, args api.OnLoadArgs) (api.OnLoadResult, error) {
	res, err := transformer.Transform(ctx, args.Path+args.Suffix)
	if err != nil {
		return api.OnLoadResult{}, err
	}
	if res == nil {
		return api.OnLoadResult{}, domain.ErrNotDiagramImport
	}

	code := res.ModuleCode()
	return api.OnLoadResult{
		Contents:   &code,
		ResolveDir: filepath.Dir(args.Path),
		Loader:     api.LoaderJS,
		WatchFiles: []string{args.Path},
	}, nil
}
