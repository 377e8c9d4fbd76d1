// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rtf flattens Factiva RTF exports into plain text and removes the
// debris the flattening leaves behind. Nothing here returns an error: every
// step that cannot decode something substitutes an empty result.
package rtf

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/pdiddy/factiva-engine/internal/textutil"
)

var (
	unicodeEscape = regexp.MustCompile(`\\u(?P<code>-?\d+)\??`)
	hexEscape     = regexp.MustCompile(`\\'(?P<byte>[0-9a-fA-F]{2})`)
	breakWord     = regexp.MustCompile(`\\(?:par|line)\b ?`)
	controlWord   = regexp.MustCompile(`\\[a-zA-Z]+\d* ?`)
	controlSymbol = regexp.MustCompile(`\\[^a-zA-Z]`)
	trailingSpace = regexp.MustCompile(`[ \t]+\n`)
)

var (
	codeGroup = unicodeEscape.SubexpIndex("code")
	byteGroup = hexEscape.SubexpIndex("byte")
)

// Decode converts RTF markup to plain text. Group structure is discarded;
// paragraph and line breaks become newlines.
func Decode(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	s = unicodeEscape.ReplaceAllStringFunc(s, decodeUnicode)
	s = hexEscape.ReplaceAllStringFunc(s, decodeHex)

	s = breakWord.ReplaceAllString(s, "\n")
	s = controlWord.ReplaceAllString(s, "")
	s = controlSymbol.ReplaceAllString(s, "")

	s = strings.NewReplacer("{", "", "}", "").Replace(s)

	s = textutil.CollapseBlankLines(s)
	s = trailingSpace.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// decodeUnicode resolves a \uN escape. N is a signed 16-bit value, so
// negative numbers wrap around 65536.
func decodeUnicode(m string) string {
	sub := unicodeEscape.FindStringSubmatch(m)
	n, err := strconv.ParseInt(sub[codeGroup], 10, 32)
	if err != nil {
		return ""
	}
	if n < 0 {
		n += 65536
	}
	if n < 0 || !utf8.ValidRune(rune(n)) {
		return ""
	}
	return string(rune(n))
}

// decodeHex resolves a \'hh escape through Windows-1252. Bytes the code
// page leaves undefined are dropped.
func decodeHex(m string) string {
	sub := hexEscape.FindStringSubmatch(m)
	b, err := strconv.ParseUint(sub[byteGroup], 16, 8)
	if err != nil {
		return ""
	}
	r := charmap.Windows1252.DecodeByte(byte(b))
	if r == utf8.RuneError || (r >= 0x80 && r <= 0x9f) {
		return ""
	}
	return string(r)
}
