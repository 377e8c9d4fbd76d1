// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment recovers article boundaries from the cleaned line stream
// of a Factiva export.
//
// The word-count line ("1,234 字") is the only reliable structural marker.
// Segmentation runs in two passes: Segment walks the anchors and reads the
// metadata block around each one; Bodies then cuts every body at the next
// article's title line, which is only known once all anchors are resolved.
package segment

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdiddy/factiva-engine/internal/textutil"
	"github.com/pdiddy/factiva-engine/pkg/types"
)

// languageWindow is how many lines past the publisher block are searched
// for a language marker.
const languageWindow = 25

var (
	wordCountLine = regexp.MustCompile(`^\s*(?P<count>[\d,]+)\s*字`)
	ipdCode       = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

	countGroup = wordCountLine.SubexpIndex("count")
)

// Anchor is a word-count line: its index in the line stream and the count
// it announces.
type Anchor struct {
	Line      int
	WordCount int
}

// Lines splits cleaned text into the right-trimmed line stream every later
// stage indexes into.
func Lines(text string) []string {
	lines := textutil.SplitLines(text)
	for i, l := range lines {
		lines[i] = strings.TrimRightFunc(l, unicode.IsSpace)
	}
	return lines
}

// FindAnchors returns every word-count line in document order. Counts use
// ASCII digits with optional comma separators; a line of bare commas is
// not an anchor.
func FindAnchors(lines []string) []Anchor {
	var anchors []Anchor
	for i, l := range lines {
		m := wordCountLine.FindStringSubmatch(l)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(strings.ReplaceAll(m[countGroup], ",", ""))
		if err != nil {
			continue
		}
		anchors = append(anchors, Anchor{Line: i, WordCount: n})
	}
	return anchors
}

// Segment runs the structural pass. It returns one Article per anchor that
// has a title above it and a parseable date below it, in document order.
// Bodies are left empty; see Bodies.
func Segment(lines []string) []types.Article {
	var articles []types.Article
	for _, a := range FindAnchors(lines) {
		if art, ok := resolve(lines, a); ok {
			articles = append(articles, art)
		}
	}
	return articles
}

// resolve reads the metadata block of one anchor. Only a missing title or
// date rejects the anchor; every other field degrades to empty.
func resolve(lines []string, a Anchor) (types.Article, bool) {
	titleLine := prevNonBlank(lines, a.Line-1)
	if titleLine < 0 {
		return types.Article{}, false
	}

	p := nextNonBlank(lines, a.Line+1)
	if p >= len(lines) {
		return types.Article{}, false
	}
	published, ok := ParseDate(lines[p])
	if !ok {
		return types.Article{}, false
	}

	var authors []string
	for k := titleLine + 1; k < a.Line; k++ {
		if l := strings.TrimSpace(lines[k]); l != "" {
			authors = append(authors, l)
		}
	}

	art := types.Article{
		Title:     strings.TrimSpace(lines[titleLine]),
		Author:    strings.Join(authors, types.AuthorSeparator),
		Published: published,
		WordCount: a.WordCount,
		TitleLine: titleLine,
		BodyStart: types.NoBody,
	}

	p = nextNonBlank(lines, p+1)
	if p < len(lines) {
		art.Publisher = strings.TrimSpace(lines[p])
	}
	p++

	// The IPD line is consumed only when it looks like a code; otherwise
	// the language scan starts on it.
	p = nextNonBlank(lines, p)
	if p < len(lines) {
		if cand := strings.TrimSpace(lines[p]); ipdCode.MatchString(cand) {
			art.IPD = cand
			p++
		}
	}

	q := p
	for n := 0; n < languageWindow && q < len(lines); n++ {
		if lang := DetectLanguage(lines[q]); lang != "" {
			art.Language = lang
			break
		}
		q++
	}

	s := q
	for s < len(lines) && !textutil.IsBlank(lines[s]) {
		s++
	}
	s = nextNonBlank(lines, s)
	if s < len(lines) {
		art.BodyStart = s
	}

	return art, true
}

// Bodies runs the boundary pass. Article i's body spans from its BodyStart
// up to, not including, article i+1's title line; the last body runs to the
// end of the document. The articles are not modified.
func Bodies(lines []string, articles []types.Article) []string {
	bodies := make([]string, len(articles))
	for i, a := range articles {
		if a.BodyStart == types.NoBody {
			continue
		}
		end := len(lines)
		if i+1 < len(articles) {
			end = articles[i+1].TitleLine
		}
		if a.BodyStart >= end {
			continue
		}
		bodies[i] = strings.TrimSpace(strings.Join(lines[a.BodyStart:end], "\n"))
	}
	return bodies
}

func nextNonBlank(lines []string, i int) int {
	for i < len(lines) && textutil.IsBlank(lines[i]) {
		i++
	}
	return i
}

func prevNonBlank(lines []string, i int) int {
	for i >= 0 && textutil.IsBlank(lines[i]) {
		i--
	}
	return i
}
