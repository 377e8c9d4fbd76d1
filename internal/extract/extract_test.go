// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeBody(t *testing.T) {
	hex90 := strings.Repeat("0123456789abcdef", 6)[:90]
	hex80 := hex90[:80]

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "corruption truncates the rest",
			in:   "Intro paragraph.\n\nSecond paragraph.\n" + hex90 + "\nTrailing line after corruption.",
			want: "Intro paragraph.\n\nSecond paragraph.",
		},
		{
			name: "line at the length limit is kept",
			in:   "Intro\n" + hex80 + "\nEnd",
			want: "Intro\n" + hex80 + "\nEnd",
		},
		{
			name: "corruption on the first line empties the body",
			in:   hex90 + "\nText",
			want: "",
		},
		{
			name: "blank runs collapse",
			in:   "a\n\n\n\nb",
			want: "a\n\nb",
		},
		{
			name: "right trim keeps indentation",
			in:   "x   \n  a",
			want: "x\n  a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeBody(tt.in))
		})
	}
}

func TestKeywords(t *testing.T) {
	body := "Body\nKeywords for this news article include: China, Technology, Quantum Computing.\nMore"
	assert.Equal(t, "China, Technology, Quantum Computing", Keywords(body))
	assert.Equal(t, "", Keywords("no keyword line"))
	assert.Equal(t, "Asia", Keywords("Keywords for this news article include:   Asia..."))
}

func TestFileID(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "code near label",
			body: "文件号 PRN0000020240305ek35000ab\nsee also DJ12345678zzz",
			want: "PRN0000020240305ek35000ab",
		},
		{
			name: "garbled label",
			body: "æ–‡ä»¶ 文件:: AMM0000020231201ejc1000ff tail",
			want: "AMM0000020231201ejc1000ff",
		},
		{
			name: "last code when no label",
			body: "ref AB12345678xyz and CD87654321abc end",
			want: "CD87654321abc",
		},
		{
			name: "digits after label block the near match",
			body: "文件 12 PRN00000202403aaa then DJ12345678zzz",
			want: "DJ12345678zzz",
		},
		{
			name: "no code",
			body: "plain text",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileID(tt.body))
		})
	}
}

func TestFallbackAuthor(t *testing.T) {
	assert.Equal(t, "Jane Doe", FallbackAuthor("Text -- By Jane Doe - Reuters\nmore"))
	assert.Equal(t, "John Roe", FallbackAuthor("--By  John Roe\nnext line"))
	assert.Equal(t, "", FallbackAuthor("no byline here"))
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "toc1toc2 ■ Headline", want: "Headline"},
		{in: "标题", want: "标题"},
		{in: "...Quoted", want: "Quoted"},
		{in: "  「中文标题」", want: "中文标题」"},
		{in: "2024 Outlook", want: "2024 Outlook"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.in))
		})
	}
}
