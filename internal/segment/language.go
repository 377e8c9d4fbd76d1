// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"regexp"
	"strings"

	"github.com/pdiddy/factiva-engine/pkg/types"
)

var (
	englishWord = regexp.MustCompile(`(?i)\benglish\b`)
	chineseWord = regexp.MustCompile(`(?i)\bchinese\b`)
)

// DetectLanguage returns the language label a metadata line announces, or
// the empty string. English is checked first.
func DetectLanguage(line string) string {
	l := strings.TrimSpace(line)
	switch {
	case containsBoth(l, "英", "文") || englishWord.MatchString(l):
		return types.LanguageEnglish
	case containsBoth(l, "中", "文") || chineseWord.MatchString(l):
		return types.LanguageChinese
	}
	return ""
}

func containsBoth(s, a, b string) bool {
	return strings.Contains(s, a) && strings.Contains(s, b)
}
