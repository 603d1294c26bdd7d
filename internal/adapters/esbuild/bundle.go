package esbuild

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/tldr/internal/core/domain"
	"go.trai.ch/zerr"
)

// BundleOptions configures one production bundle.
type BundleOptions struct {
	// Root is the absolute working directory of the bundle.
	Root string
	// EntryPoints are the modules to bundle, relative to Root or absolute.
	EntryPoints []string
	// Outdir is the output directory, relative to Root or absolute.
	Outdir string
	// Minify minifies the generated JavaScript.
	Minify bool
}

// Report summarizes a successful bundle.
type Report struct {
	// Outputs are the absolute paths of the generated bundle files.
	Outputs []string
	// Assets are the emitted build assets.
	Assets []domain.Asset
	// Warnings are esbuild's formatted warnings.
	Warnings []string
}

// Bundle runs esbuild with the plugin installed and writes the bundle and its
// assets into the output directory.
func Bundle(ctx context.Context, transformer Transformer, emitter *Emitter, opts BundleOptions) (Report, error) {
	if len(opts.EntryPoints) == 0 {
		return Report{}, domain.ErrNoEntryPoints
	}

	outdir := opts.Outdir
	if !filepath.IsAbs(outdir) {
		outdir = filepath.Join(opts.Root, outdir)
	}

	result := api.Build(api.BuildOptions{
		AbsWorkingDir:     opts.Root,
		EntryPoints:       opts.EntryPoints,
		Bundle:            true,
		Write:             true,
		Outdir:            outdir,
		Format:            api.FormatESModule,
		LogLevel:          api.LogLevelSilent,
		MinifyWhitespace:  opts.Minify,
		MinifyIdentifiers: opts.Minify,
		MinifySyntax:      opts.Minify,
		Plugins:           []api.Plugin{NewPlugin(ctx, transformer, emitter)},
	})

	report := Report{Warnings: formatMessages(result.Warnings)}
	if len(result.Errors) > 0 {
		errs := make([]error, 0, len(result.Errors))
		for _, msg := range formatMessages(result.Errors) {
			errs = append(errs, errors.New(msg))
		}
		return report, zerr.With(zerr.Wrap(errors.Join(errs...), domain.ErrBundleFailed.Error()), "errors", len(errs))
	}

	for _, file := range result.OutputFiles {
		report.Outputs = append(report.Outputs, file.Path)
	}
	report.Assets = emitter.Assets()
	return report, nil
}

// formatMessages renders esbuild messages as "file:line:column: text".
func formatMessages(msgs []api.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		text := msg.Text
		if msg.PluginName != "" {
			text = fmt.Sprintf("[plugin %s] %s", msg.PluginName, text)
		}
		if loc := msg.Location; loc != nil {
			text = fmt.Sprintf("%s:%d:%d: %s", loc.File, loc.Line, loc.Column, text)
		}
		out = append(out, text)
	}
	return out
}
