// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package taxonomy buckets Factiva keyword lists into topics, regions and
// industries, and picks company names out of article text.
//
// Tables are built once and never modified, so a Classifier or
// CompanyExtractor can be shared by concurrent conversions.
package taxonomy

import (
	"strings"
	"sync"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Buckets is the partition of one keyword list. Every keyword lands in
// exactly one bucket, in source order.
type Buckets struct {
	Topics     []string `json:"topics" yaml:"topics"`
	Regions    []string `json:"regions" yaml:"regions"`
	Industries []string `json:"industries" yaml:"industries"`
}

// Classifier routes keywords by priority: exact region names first, then
// industry hints (case-insensitive substring), then everything else as a
// topic.
type Classifier struct {
	regions map[string]struct{}
	// industries matches lowercased hints. nil when there are none.
	industries *ahocorasick.Matcher
}

// New builds a classifier from cfg. Empty lists use the built-in tables.
func New(cfg Config) *Classifier {
	cfg.setDefaults()

	regions := make(map[string]struct{}, len(cfg.Regions))
	for _, r := range cfg.Regions {
		regions[r] = struct{}{}
	}

	hints := make([]string, 0, len(cfg.IndustryHints))
	for _, h := range cfg.IndustryHints {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			hints = append(hints, h)
		}
	}

	c := &Classifier{regions: regions}
	if len(hints) > 0 {
		c.industries = ahocorasick.NewStringMatcher(hints)
	}
	return c
}

var defaultClassifier = sync.OnceValue(func() *Classifier {
	return New(DefaultConfig())
})

// Default returns the shared classifier built from the built-in tables.
func Default() *Classifier {
	return defaultClassifier()
}

// Classify splits a comma-separated keyword list and buckets each
// non-empty, trimmed keyword.
func (c *Classifier) Classify(keywords string) Buckets {
	var b Buckets
	for _, part := range strings.Split(keywords, ",") {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}
		switch {
		case c.isRegion(p):
			b.Regions = append(b.Regions, p)
		case c.isIndustry(p):
			b.Industries = append(b.Industries, p)
		default:
			b.Topics = append(b.Topics, p)
		}
	}
	return b
}

func (c *Classifier) isRegion(keyword string) bool {
	_, ok := c.regions[keyword]
	return ok
}

func (c *Classifier) isIndustry(keyword string) bool {
	if c.industries == nil {
		return false
	}
	return len(c.industries.MatchThreadSafe([]byte(strings.ToLower(keyword)))) > 0
}
