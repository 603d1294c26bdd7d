// Package probe reads the intrinsic size of rendered images.
package probe

import (
	"encoding/xml"
	"errors"
	"image"
	_ "image/png" // Registers the PNG decoder for image.DecodeConfig.
	"io"
	"os"
	"strconv"
	"strings"

	"go.trai.ch/tldr/internal/core/domain"
	"go.trai.ch/tldr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ImageProber = (*Prober)(nil)

// Prober implements ports.ImageProber for svg and png files.
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

// Dimensions returns the width and height of the image at path.
func (p *Prober) Dimensions(path string, format domain.Format) (domain.Dimensions, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return domain.Dimensions{}, zerr.With(zerr.Wrap(err, domain.ErrProbeFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	var dims domain.Dimensions
	switch format {
	case domain.FormatPNG:
		dims, err = pngDimensions(f)
	case domain.FormatSVG:
		dims, err = svgDimensions(f)
	default:
		return domain.Dimensions{}, zerr.With(domain.ErrUnsupportedProbeFormat, "format", format.String())
	}
	if err != nil {
		return domain.Dimensions{}, zerr.With(zerr.Wrap(err, domain.ErrProbeFailed.Error()), "path", path)
	}
	return dims, nil
}

func pngDimensions(r io.Reader) (domain.Dimensions, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return domain.Dimensions{}, err
	}
	return domain.Dimensions{Width: float64(cfg.Width), Height: float64(cfg.Height)}, nil
}

var errNoSVGRoot = errors.New("no svg root element")

// svgDimensions reads width and height from the root element, falling back to
// the viewBox when either attribute is missing or not numeric.
func svgDimensions(r io.Reader) (domain.Dimensions, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return domain.Dimensions{}, errNoSVGRoot
			}
			return domain.Dimensions{}, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "svg" {
			return domain.Dimensions{}, errNoSVGRoot
		}
		return rootDimensions(start.Attr)
	}
}

func rootDimensions(attrs []xml.Attr) (domain.Dimensions, error) {
	var width, height, viewBox string
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "width":
			width = attr.Value
		case "height":
			height = attr.Value
		case "viewBox":
			viewBox = attr.Value
		}
	}

	w, wErr := parseLength(width)
	h, hErr := parseLength(height)
	if wErr == nil && hErr == nil {
		return domain.Dimensions{Width: w, Height: h}, nil
	}

	fields := strings.Fields(strings.ReplaceAll(viewBox, ",", " "))
	if len(fields) != 4 {
		return domain.Dimensions{}, zerr.With(zerr.New("svg has no usable size"), "viewBox", viewBox)
	}
	vw, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return domain.Dimensions{}, zerr.Wrap(err, "invalid viewBox width")
	}
	vh, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return domain.Dimensions{}, zerr.Wrap(err, "invalid viewBox height")
	}
	return domain.Dimensions{Width: vw, Height: vh}, nil
}

func parseLength(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	return strconv.ParseFloat(s, 64)
}
