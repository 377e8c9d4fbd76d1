// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/pdiddy/factiva-engine/internal/textutil"
)

// companySampleLines bounds how much of the body is scanned. Deeper text
// is mostly boilerplate that yields false positives.
const companySampleLines = 30

// companyToken is one capitalized word of a company name.
const companyToken = `[A-Z][A-Za-z0-9&.\-]*`

// CompanyExtractor finds names made of one to seven capitalized tokens
// followed by a corporate suffix.
type CompanyExtractor struct {
	pattern *regexp.Regexp
	group   int
}

// NewCompanyExtractor builds an extractor for the given suffixes. An empty
// list uses the built-in suffixes.
func NewCompanyExtractor(suffixes []string) *CompanyExtractor {
	if len(suffixes) == 0 {
		suffixes = defaultCorporateSuffixes
	}
	p := companyPattern(suffixes)
	return &CompanyExtractor{pattern: p, group: p.SubexpIndex("company")}
}

// companyPattern assembles the matcher. A suffix ending in a period closes
// the name by itself; a word suffix must end on a word boundary so that
// "Group" does not match inside "Groupon".
func companyPattern(suffixes []string) *regexp.Regexp {
	var dotted, words []string
	for _, s := range suffixes {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if strings.HasSuffix(s, ".") {
			dotted = append(dotted, regexp.QuoteMeta(s))
		} else {
			words = append(words, regexp.QuoteMeta(s))
		}
	}
	alts := dotted
	if len(words) > 0 {
		alts = append(alts, `(?:`+strings.Join(words, "|")+`)\b`)
	}
	return regexp.MustCompile(`\b(?P<company>` + companyToken + `(?:\s+` + companyToken + `){0,6}\s+(?:` +
		strings.Join(alts, "|") + `))`)
}

var defaultCompanies = sync.OnceValue(func() *CompanyExtractor {
	return NewCompanyExtractor(nil)
})

// DefaultCompanies returns the shared extractor built from the built-in
// suffixes.
func DefaultCompanies() *CompanyExtractor {
	return defaultCompanies()
}

// Extract scans the title and the first lines of the body and returns the
// distinct company names, sorted.
func (e *CompanyExtractor) Extract(title, body string) []string {
	lines := textutil.SplitLines(body)
	if len(lines) > companySampleLines {
		lines = lines[:companySampleLines]
	}
	sample := title + "\n" + strings.Join(lines, "\n")

	seen := make(map[string]struct{})
	var names []string
	for _, m := range e.pattern.FindAllStringSubmatch(sample, -1) {
		name := m[e.group]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
