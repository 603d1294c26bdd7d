package domain

import (
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// markerPattern matches the trailing marker segment that disambiguates a
// parameterized import (e.g. "&tldr" or "&tldraw") and anything after it.
var markerPattern = regexp.MustCompile(`&tldr.*$`)

// SourceRef identifies a diagram file and the raw rendering parameters of one import.
type SourceRef struct {
	// Path is the slash-separated path of the diagram file, without query.
	Path string
	// Query is the raw parameter string with the trailing marker removed.
	Query string
}

// ParseSourceRef parses an import id such as "sketch.tldr?format=png&tldr".
// It reports false when the id does not reference a .tldr file.
func ParseSourceRef(id string) (SourceRef, bool) {
	cleanID, _, _ := strings.Cut(id, "?")
	if !strings.HasSuffix(cleanID, SourceExt) {
		return SourceRef{}, false
	}

	stripped := markerPattern.ReplaceAllString(id, "")
	_, query, _ := strings.Cut(stripped, "?")
	query, _, _ = strings.Cut(query, "?")

	return SourceRef{
		Path:  filepath.ToSlash(filepath.Clean(cleanID)),
		Query: query,
	}, true
}

// Options returns the query parameters as an option set.
// Repeated keys collapse to their first value. Malformed pairs are skipped.
func (s SourceRef) Options() Options {
	// ParseQuery keeps every well-formed pair even when it reports an error.
	values, _ := url.ParseQuery(s.Query)

	opts := make(Options, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			opts[key] = vals[0]
		}
	}
	return opts
}

// BaseName returns the file name of the diagram without its extension.
func (s SourceRef) BaseName() string {
	base := path.Base(s.Path)
	return strings.TrimSuffix(base, path.Ext(base))
}

// String returns the source path with its query, if any.
func (s SourceRef) String() string {
	if s.Query == "" {
		return s.Path
	}
	return s.Path + "?" + s.Query
}
