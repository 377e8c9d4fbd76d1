// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil provides line-level text helpers shared across the
// decoding, segmentation and extraction stages.
package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// SplitLines splits text on every line terminator: \n, \r\n, \r, \v, \f,
// the file/group/record separators, NEL, and the Unicode line and paragraph
// separators. A terminator at the very end does not yield an empty line.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// CollapseBlankLines replaces runs of three or more newlines with exactly two.
func CollapseBlankLines(text string) string {
	return blankRuns.ReplaceAllString(text, "\n\n")
}

// IsBlank reports whether line holds only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// HexRatio returns the fraction of characters in s that are hexadecimal
// digits. An empty string has ratio 0.
func HexRatio(s string) float64 {
	var n, hex int
	for _, r := range s {
		n++
		if isHexDigit(r) {
			hex++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(hex) / float64(n)
}

// LooksBinary reports whether a trimmed line is longer than minLen
// characters and its hex-digit ratio exceeds ratio.
func LooksBinary(line string, minLen int, ratio float64) bool {
	return utf8.RuneCountInString(line) > minLen && HexRatio(line) > ratio
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
