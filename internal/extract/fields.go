// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

// fileIDCode matches Factiva document identifiers such as
// PRN0000020240305ek35000ab: an uppercase source prefix, a run of digits
// carrying the date, and an alphanumeric tail.
const fileIDCode = `\b[A-Z]{2,10}\d{8,}[A-Za-z0-9]{3,}\b`

var (
	keywordsLine = regexp.MustCompile(`Keywords for this news article include:\s*(?P<keywords>.+)`)
	fileIDAny    = regexp.MustCompile(fileIDCode)
	fileIDNear   = regexp.MustCompile(`文件\D{0,15}(?P<id>` + fileIDCode + `)`)
	byline       = regexp.MustCompile(`--\s*By\s+(?P<name>[^-\n]+)`)
	tocPrefix    = regexp.MustCompile(`^(?:toc\d+)+`)
	symbolPrefix = regexp.MustCompile(`^[^\p{L}\p{N}_]+`)
)

// Keywords returns the keyword list that follows "Keywords for this news
// article include:", without its trailing period.
func Keywords(body string) string {
	m := keywordsLine.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	kw := strings.TrimSpace(m[keywordsLine.SubexpIndex("keywords")])
	return strings.TrimRight(kw, ".")
}

// FileID returns the document identifier. A code shortly after 文件 wins,
// even when the label itself is garbled; otherwise the last code in the
// body is used.
func FileID(body string) string {
	if m := fileIDNear.FindStringSubmatch(body); m != nil {
		return m[fileIDNear.SubexpIndex("id")]
	}
	all := fileIDAny.FindAllString(body, -1)
	if len(all) == 0 {
		return ""
	}
	return all[len(all)-1]
}

// FallbackAuthor returns the name in a "-- By <name>" byline, up to the
// next dash or line end.
func FallbackAuthor(body string) string {
	m := byline.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[byline.SubexpIndex("name")])
}

// CleanTitle strips leading table-of-contents references and any leading
// characters that are not letters, digits or underscores.
func CleanTitle(title string) string {
	t := strings.TrimSpace(tocPrefix.ReplaceAllString(title, ""))
	return strings.TrimSpace(symbolPrefix.ReplaceAllString(t, ""))
}
