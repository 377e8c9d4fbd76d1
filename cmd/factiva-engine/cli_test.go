// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/factiva-engine/internal/convert"
	"github.com/pdiddy/factiva-engine/pkg/types"
)

func TestClip(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "short", in: "Headline", width: 20, want: "Headline"},
		{name: "whitespace flattened", in: "two\nlines  here", width: 20, want: "two lines here"},
		{name: "ascii truncated", in: "abcdefghij", width: 8, want: "abcde..."},
		{name: "wide runes count double", in: "中文标题很长", width: 7, want: "中文..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clip(tt.in, tt.width))
		})
	}
}

func TestWriteTables(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.rtf")
	bad := filepath.Join(dir, "bad.rtf")
	result := convert.BatchResult{Docs: []convert.DocResult{
		{Path: good, Rows: []types.Row{{Title: "A", Timestamp: "2024-03-05 09:30:00"}}},
		{Path: bad, Err: errors.New("boom")},
	}}
	files := []string{good, bad}

	cfg := types.ConvertConfig{Input: dir, Format: types.FormatCSV}
	require.NoError(t, writeTables(cfg, files, result))
	assert.FileExists(t, filepath.Join(dir, "good.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "bad.csv"), "failed documents get no table")

	merged := filepath.Join(dir, "all.json")
	cfg = types.ConvertConfig{Input: dir, Output: merged, Merge: true, Format: types.FormatJSON}
	require.NoError(t, writeTables(cfg, files, result))
	data, err := os.ReadFile(merged)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "A"`)
}
