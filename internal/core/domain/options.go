package domain

import (
	"encoding/json"
	"maps"

	"go.trai.ch/zerr"
)

// Option keys recognized in import queries and plugin defaults.
const (
	OptFormat      = "format"
	OptPage        = "page"
	OptFrame       = "frame"
	OptScale       = "scale"
	OptPadding     = "padding"
	OptDark        = "dark"
	OptTransparent = "transparent"
	OptStripStyle  = "stripStyle"
)

// ConverterOptionKeys lists the option keys forwarded to the external converter,
// in the order they are passed.
var ConverterOptionKeys = []string{
	OptFormat,
	OptPage,
	OptFrame,
	OptScale,
	OptPadding,
	OptDark,
	OptTransparent,
	OptStripStyle,
}

// Format is an image output format.
type Format string

const (
	// FormatSVG renders a vector image.
	FormatSVG Format = "svg"
	// FormatPNG renders a raster image.
	FormatPNG Format = "png"
	// FormatTldr is the source format. It is never a valid metadata target.
	FormatTldr Format = "tldr"
)

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// Valid reports whether f is a format the converter can export.
func (f Format) Valid() bool {
	switch f {
	case FormatSVG, FormatPNG, FormatTldr:
		return true
	default:
		return false
	}
}

// Options is a set of rendering parameters keyed by option name.
// Values are kept as strings and forwarded verbatim to the converter.
// A missing key means the option is undefined; an empty value is a defined value.
type Options map[string]string

// BuiltinOptions returns the built-in defaults, matching the converter's own defaults.
func BuiltinOptions() Options {
	return Options{
		OptDark:        "false",
		OptFormat:      string(FormatSVG),
		OptStripStyle:  "false",
		OptTransparent: "false",
	}
}

// MergeOptions shallow-merges layers from lowest to highest priority.
// Only defined keys of a layer override the layers below it.
func MergeOptions(layers ...Options) Options {
	merged := make(Options)
	for _, layer := range layers {
		maps.Copy(merged, layer)
	}
	return merged
}

// ResolveOptions layers built-in defaults, plugin defaults and query parameters.
// It rejects unknown formats, and the source format as a target when metadata
// output is requested.
func ResolveOptions(defaults, query Options, returnMetadata bool) (Options, error) {
	resolved := MergeOptions(BuiltinOptions(), defaults, query)
	format := resolved.Format()
	if !format.Valid() {
		return nil, zerr.With(zerr.Wrap(ErrUnknownFormat, "invalid import options"), "format", format.String())
	}
	if returnMetadata && format == FormatTldr {
		return nil, ErrUnsupportedTargetFormat
	}
	return resolved, nil
}

// Format returns the requested output format, defaulting to svg.
func (o Options) Format() Format {
	if f := o[OptFormat]; f != "" {
		return Format(f)
	}
	return FormatSVG
}

// Page returns the single page selector, or "" when none is set.
func (o Options) Page() string {
	return o[OptPage]
}

// Frame returns the single frame selector, or "" when none is set.
func (o Options) Frame() string {
	return o[OptFrame]
}

// Canonical returns the serialization folded into the cache key.
// Keys are emitted in sorted order so equal option sets always serialize identically.
func (o Options) Canonical() []byte {
	if o == nil {
		return []byte("{}")
	}
	// encoding/json sorts map keys; a string map cannot fail to marshal.
	data, _ := json.Marshal(map[string]string(o))
	return data
}

// Clone returns a copy of the option set.
func (o Options) Clone() Options {
	return maps.Clone(o)
}
