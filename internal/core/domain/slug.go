package domain

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

// Word boundary rules applied before slugifying, so that camel-cased and
// mixed alphanumeric identifiers split into separate words.
var decamelizeRules = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`([A-Z]{2,})(\d+)`), "$1 $2"},
	{regexp.MustCompile(`([a-z\d]+)([A-Z]{2,})`), "$1 $2"},
	{regexp.MustCompile(`([a-z\d])([A-Z])`), "$1 $2"},
	{regexp.MustCompile(`([A-Z]+)([A-Z][a-rt-z\d]+)`), "$1 $2"},
}

// Slugify turns an arbitrary selector into a filesystem-safe token:
// lowercase ASCII words joined by single hyphens.
//
//	Slugify("page-2")                // "page-2"
//	Slugify("gVS4O2yNqyRKDV4lp3Trd") // "g-vs-4-o2y-nqy-rkdv-4lp3-trd"
func Slugify(s string) string {
	for _, rule := range decamelizeRules {
		s = rule.pattern.ReplaceAllString(s, rule.replacement)
	}
	s = strings.ReplaceAll(s, "_", " ")
	return slug.Make(s)
}
