package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Metadata is the default export of a rewritten import when metadata output is enabled.
type Metadata struct {
	Format Format  `json:"format"`
	Height float64 `json:"height"`
	Src    string  `json:"src"`
	Width  float64 `json:"width"`
}

// Result describes one rewritten import.
type Result struct {
	// Source is the intercepted reference.
	Source SourceRef
	// Options are the resolved rendering options.
	Options Options
	// Key is the cache key of the artifact.
	Key CacheKey
	// Slot is the cache slot file name.
	Slot Slot
	// State reports whether the artifact was rendered or served from cache.
	State LookupState
	// ArtifactPath is the absolute path of the cached artifact.
	ArtifactPath string
	// ExportPath is the public path the rewritten import resolves to.
	ExportPath string
	// Metadata is set when metadata output is enabled.
	Metadata *Metadata
}

// ModuleCode returns the JavaScript module replacing the import.
func (r *Result) ModuleCode() string {
	var value any = r.ExportPath
	if r.Metadata != nil {
		value = r.Metadata
	}
	return "export default " + encodeJS(value) + ";"
}

// encodeJS encodes v as a JavaScript literal without HTML escaping.
func encodeJS(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Strings, floats and Metadata always encode.
	_ = enc.Encode(v)
	return strings.TrimSuffix(buf.String(), "\n")
}
