// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract delimits article bodies and pulls secondary fields
// (keywords, file identifier, fallback author) out of them.
package extract

import (
	"strings"
	"unicode"

	"github.com/pdiddy/factiva-engine/internal/textutil"
)

const (
	// corruptMinLen is the length a body line must exceed before it can be
	// treated as undecoded binary.
	corruptMinLen = 80
	// corruptHexRatio is the hex-digit fraction above which such a line
	// ends the body.
	corruptHexRatio = 0.8
)

// SanitizeBody cuts the body at the first line that looks like leaked
// binary. That line and everything after it are dropped, since corruption
// at this depth is usually the undecoded remnant of the next record.
func SanitizeBody(body string) string {
	var kept []string
	for _, ln := range textutil.SplitLines(body) {
		l := strings.TrimSpace(ln)
		if l == "" {
			kept = append(kept, "")
			continue
		}
		if textutil.LooksBinary(l, corruptMinLen, corruptHexRatio) {
			break
		}
		kept = append(kept, strings.TrimRightFunc(ln, unicode.IsSpace))
	}
	out := strings.TrimSpace(strings.Join(kept, "\n"))
	return textutil.CollapseBlankLines(out)
}
