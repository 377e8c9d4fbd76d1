// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rtf

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/factiva-engine/internal/textutil"
)

// Banner is the header line Factiva writes ahead of the first article.
const Banner = "Factiva RTF Display Format"

const (
	// noiseMinLen is the length a line must exceed before it can be
	// dropped as leaked binary payload.
	noiseMinLen = 120
	// noiseHexRatio is the hex-digit fraction above which such a line is
	// dropped.
	noiseHexRatio = 0.75
)

var (
	tocHyperlink = regexp.MustCompile(`HYPERLINK\s+toc\d+"`)
	pageFooter   = regexp.MustCompile(`(?m)^(?:d )?Page\s+(?:PAGE)?\d+\b.*`)
	pageField    = regexp.MustCompile(`\bPAGE\d+\b`)
	numPages     = regexp.MustCompile(`\bNUMPAGES\d+\b`)
	spaceRuns    = regexp.MustCompile(`[ \t]{2,}`)
	indent       = regexp.MustCompile(`\n[ \t]+`)
)

// TrimToBanner drops everything before the Factiva banner. Text without a
// banner is returned unchanged.
func TrimToBanner(text string) string {
	if i := strings.Index(text, Banner); i >= 0 {
		return text[i:]
	}
	return text
}

// FilterNoise trims every line, drops long lines that are mostly hex
// digits, and replaces non-printable characters with spaces. Blank lines
// are kept because segmentation depends on them.
func FilterNoise(text string) string {
	lines := textutil.SplitLines(text)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		l := strings.TrimSpace(line)
		if l == "" {
			out = append(out, "")
			continue
		}
		if textutil.LooksBinary(l, noiseMinLen, noiseHexRatio) {
			continue
		}
		out = append(out, strings.Map(printable, l))
	}
	return strings.TrimSpace(textutil.CollapseBlankLines(strings.Join(out, "\n")))
}

func printable(r rune) rune {
	if unicode.IsPrint(r) {
		return r
	}
	return ' '
}

// Preprocess removes Factiva boilerplate (table-of-contents hyperlinks,
// page-number fields and footers) and normalizes whitespace. It must run
// after FilterNoise.
func Preprocess(text string) string {
	t := strings.ReplaceAll(text, `\'`, "'")
	t = tocHyperlink.ReplaceAllString(t, "\n")
	t = pageFooter.ReplaceAllString(t, "")
	t = pageField.ReplaceAllString(t, "")
	t = numPages.ReplaceAllString(t, "")
	t = textutil.CollapseBlankLines(t)
	t = spaceRuns.ReplaceAllString(t, " ")
	t = indent.ReplaceAllString(t, "\n")
	return strings.TrimSpace(t)
}

// Clean runs the whole text recovery front end: decode, trim to the
// banner, filter noise, and strip boilerplate.
func Clean(raw string) string {
	return Preprocess(FilterNoise(TrimToBanner(Decode(raw))))
}
