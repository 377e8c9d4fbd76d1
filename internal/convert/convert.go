// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns Factiva RTF exports into article records. A
// Pipeline runs the stages for one document in order: decode and clean,
// segment, slice bodies, then extract and classify fields per article.
package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/factiva-engine/internal/extract"
	"github.com/pdiddy/factiva-engine/internal/logger"
	"github.com/pdiddy/factiva-engine/internal/rtf"
	"github.com/pdiddy/factiva-engine/internal/segment"
	"github.com/pdiddy/factiva-engine/internal/taxonomy"
	"github.com/pdiddy/factiva-engine/pkg/types"
)

// ErrNoInput is returned when an input path holds no RTF files.
var ErrNoInput = errors.New("no RTF input found")

// Pipeline converts documents. It holds only read-only tables and is safe
// for concurrent use.
type Pipeline struct {
	classifier *taxonomy.Classifier
	companies  *taxonomy.CompanyExtractor
	log        logger.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTaxonomy replaces the built-in classification tables.
func WithTaxonomy(cfg taxonomy.Config) Option {
	return func(p *Pipeline) {
		p.classifier = taxonomy.New(cfg)
		p.companies = taxonomy.NewCompanyExtractor(cfg.CorporateSuffixes)
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logger.Logger) Option {
	return func(p *Pipeline) {
		p.log = l
	}
}

// NewPipeline returns a pipeline using the built-in tables unless
// overridden by opts.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		classifier: taxonomy.Default(),
		companies:  taxonomy.DefaultCompanies(),
		log:        logger.NewNop(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Convert recovers the articles of one raw RTF document, in document
// order. A document without valid anchors yields nil.
func (p *Pipeline) Convert(raw string) []types.Article {
	lines := segment.Lines(rtf.Clean(raw))
	articles := segment.Segment(lines)
	if len(articles) == 0 {
		return nil
	}
	bodies := segment.Bodies(lines, articles)

	out := make([]types.Article, len(articles))
	for i, a := range articles {
		out[i] = p.enrich(a, bodies[i])
	}
	return out
}

// enrich attaches the body and every field derived from it.
func (p *Pipeline) enrich(a types.Article, rawBody string) types.Article {
	body := extract.SanitizeBody(rawBody)
	a.Body = body
	a.Keywords = extract.Keywords(body)
	a.FileID = extract.FileID(body)
	if a.Author == "" {
		a.Author = extract.FallbackAuthor(body)
	}
	// Keep the raw headline when cleaning would leave nothing.
	if title := extract.CleanTitle(a.Title); title != "" {
		a.Title = title
	}

	b := p.classifier.Classify(a.Keywords)
	a.Topics, a.Regions, a.Industries = b.Topics, b.Regions, b.Industries
	a.Companies = p.companies.Extract(a.Title, body)
	return a
}

// ConvertFile reads and converts one file and returns its rows. Invalid
// UTF-8 is dropped before decoding. A panic inside the pipeline is
// recovered and reported as an error naming the file.
func (p *Pipeline) ConvertFile(path string) (rows []types.Row, err error) {
	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	defer func() {
		if r := recover(); r != nil {
			rows = nil
			err = fmt.Errorf("converting %s: %v", path, r)
		}
	}()

	articles := p.Convert(strings.ToValidUTF8(string(data), ""))
	rows = make([]types.Row, len(articles))
	for i, a := range articles {
		rows[i] = a.Row()
	}
	p.log.Debug("document converted",
		logger.String("file", path),
		logger.Int("articles", len(rows)),
		logger.Duration("elapsed", time.Since(start)),
	)
	return rows, nil
}

// FindInputs resolves path to the RTF files to convert. A directory yields
// its .rtf files (any extension case) sorted by name; a file yields itself
// when it has an .rtf extension.
func FindInputs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading input %s: %w", path, err)
	}

	if !info.IsDir() {
		if !isRTF(path) {
			return nil, fmt.Errorf("%s: %w", path, ErrNoInput)
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading input dir %s: %w", path, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && isRTF(e.Name()) {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoInput)
	}
	sort.Strings(files)
	return files, nil
}

func isRTF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".rtf")
}
