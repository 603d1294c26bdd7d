package probe_test

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tldr/internal/adapters/probe"
	"go.trai.ch/tldr/internal/core/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func TestProber_SVG(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    domain.Dimensions
	}{
		{
			name:    "width and height",
			content: `<svg xmlns="http://www.w3.org/2000/svg" width="320" height="240"></svg>`,
			want:    domain.Dimensions{Width: 320, Height: 240},
		},
		{
			name:    "pixel units and prolog",
			content: `<?xml version="1.0"?><!-- exported --><svg width="12.5px" height="8px" viewBox="0 0 1 1"/>`,
			want:    domain.Dimensions{Width: 12.5, Height: 8},
		},
		{
			name:    "viewBox fallback",
			content: `<svg viewBox="0 0 640 480"></svg>`,
			want:    domain.Dimensions{Width: 640, Height: 480},
		},
		{
			name:    "percent size falls back to viewBox",
			content: `<svg width="100%" height="100%" viewBox="0,0,50,25"></svg>`,
			want:    domain.Dimensions{Width: 50, Height: 25},
		},
	}

	prober := probe.NewProber()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims, err := prober.Dimensions(writeFile(t, "image.svg", tt.content), domain.FormatSVG)
			require.NoError(t, err)
			assert.Equal(t, tt.want, dims)
		})
	}
}

func TestProber_SVG_Invalid(t *testing.T) {
	prober := probe.NewProber()

	_, err := prober.Dimensions(writeFile(t, "image.svg", `<html></html>`), domain.FormatSVG)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrProbeFailed.Error())

	_, err = prober.Dimensions(writeFile(t, "image.svg", `<svg></svg>`), domain.FormatSVG)
	require.Error(t, err)
}

func TestProber_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 7, 3))))
	require.NoError(t, f.Close())

	dims, err := probe.NewProber().Dimensions(path, domain.FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, domain.Dimensions{Width: 7, Height: 3}, dims)
}

func TestProber_Errors(t *testing.T) {
	prober := probe.NewProber()

	_, err := prober.Dimensions(filepath.Join(t.TempDir(), "missing.svg"), domain.FormatSVG)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = prober.Dimensions(writeFile(t, "image.tldr", `{}`), domain.FormatTldr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrUnsupportedProbeFormat.Error())
}
