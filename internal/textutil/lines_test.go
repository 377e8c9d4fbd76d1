// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "single line", in: "abc", want: []string{"abc"}},
		{name: "trailing newline dropped", in: "a\nb\n", want: []string{"a", "b"}},
		{name: "blank lines kept", in: "a\n\n\nb", want: []string{"a", "", "", "b"}},
		{name: "crlf counts once", in: "a\r\nb\rc", want: []string{"a", "b", "c"}},
		{name: "unicode separators", in: "a\u2028b\u2029c\u0085d", want: []string{"a", "b", "c", "d"}},
		{name: "cjk content", in: "标题\n1,234 字", want: []string{"标题", "1,234 字"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.in))
		})
	}
}

func TestCollapseBlankLines(t *testing.T) {
	assert.Equal(t, "a\n\nb", CollapseBlankLines("a\n\n\n\n\nb"))
	assert.Equal(t, "a\n\nb", CollapseBlankLines("a\n\nb"))
	assert.Equal(t, "a\nb", CollapseBlankLines("a\nb"))
}

func TestHexRatio(t *testing.T) {
	assert.Equal(t, 0.0, HexRatio(""))
	assert.Equal(t, 1.0, HexRatio("deadBEEF0123"))
	assert.Equal(t, 0.5, HexRatio("abxy"))
	// CJK characters count as one character each.
	assert.Equal(t, 0.5, HexRatio("ab文件"))
}

func TestLooksBinary(t *testing.T) {
	hex90 := strings.Repeat("0123456789abcdef", 6)[:90]
	assert.True(t, LooksBinary(hex90, 80, 0.8))
	assert.False(t, LooksBinary(hex90, 120, 0.75), "too short for the document threshold")
	assert.False(t, LooksBinary(strings.Repeat("z", 200), 120, 0.75))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\u3000"))
	assert.False(t, IsBlank(" x "))
}
