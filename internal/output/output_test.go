// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/factiva-engine/pkg/types"
)

var sampleRows = []types.Row{
	{
		Title:     "Quantum leap, for chips",
		Author:    "Jane Doe",
		Timestamp: "2024-03-05 09:30:00",
		Language:  types.LanguageEnglish,
		Body:      "Line one.\n\n\"Quoted\" line two.",
		IPD:       "RTRS",
		Topics:    "Quantum Computing",
		Regions:   "China; Asia",
		Publisher: "Reuters",
		FileID:    "RTRS000020240305ek35000ab",
		Companies: "Acme Robotics Inc.",
		WordCount: 1200,
	},
	{
		Title:     "第二篇",
		Timestamp: "2024-03-06 00:00:00",
		Language:  types.LanguageChinese,
		Publisher: "Xinhua",
		WordCount: 80,
	},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    types.OutputFormat
		wantErr bool
	}{
		{in: "", want: types.FormatCSV},
		{in: "CSV", want: types.FormatCSV},
		{in: " xlsx ", want: types.FormatXLSX},
		{in: "json", want: types.FormatJSON},
		{in: "yaml", want: types.FormatYAML},
		{in: "xml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, csvWriter{}.Write(&buf, sampleRows))

	data := buf.String()
	require.True(t, strings.HasPrefix(data, utf8BOM), "output starts with a BOM")

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(data, utf8BOM))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, types.Columns, records[0])
	assert.Equal(t, sampleRows[0].Values(), records[1])
	assert.Equal(t, "80", records[2][12])
}

func TestXLSXWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, xlsxWriter{}.Write(&buf, sampleRows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, types.Columns, rows[0])
	assert.Equal(t, "Quantum leap, for chips", rows[1][0])
	assert.Equal(t, "1200", rows[1][12])
	assert.Equal(t, "第二篇", rows[2][0])
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jsonWriter{}.Write(&buf, sampleRows))

	var got []types.Row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleRows, got)

	buf.Reset()
	require.NoError(t, jsonWriter{}.Write(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, yamlWriter{}.Write(&buf, sampleRows))

	var got []types.Row
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleRows, got)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	require.NoError(t, WriteFile(path, types.FormatCSV, sampleRows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Acme Robotics Inc.")

	assert.Error(t, WriteFile(path, types.OutputFormat("pdf"), sampleRows))
}

func TestPlan(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	in := filepath.Join(dir, "in")
	files := []string{filepath.Join(in, "a.rtf"), filepath.Join(in, "b.RTF")}

	tests := []struct {
		name   string
		output string
		merge  bool
		want   []Target
	}{
		{
			name:  "merge without output goes next to the input",
			merge: true,
			want:  []Target{{Path: filepath.Join(dir, "merged_output.xlsx"), Sources: files}},
		},
		{
			name:   "merge to explicit file",
			output: filepath.Join(dir, "all.xlsx"),
			merge:  true,
			want:   []Target{{Path: filepath.Join(dir, "all.xlsx"), Sources: files}},
		},
		{
			name:   "per file into a directory",
			output: outDir,
			want: []Target{
				{Path: filepath.Join(outDir, "a.xlsx"), Sources: files[:1]},
				{Path: filepath.Join(outDir, "b.xlsx"), Sources: files[1:]},
			},
		},
		{
			name:   "per file to an explicit file",
			output: filepath.Join(dir, "one.xlsx"),
			want: []Target{
				{Path: filepath.Join(dir, "one.xlsx"), Sources: files[:1]},
				{Path: filepath.Join(dir, "one.xlsx"), Sources: files[1:]},
			},
		},
		{
			name: "per file next to each input",
			want: []Target{
				{Path: filepath.Join(in, "a.xlsx"), Sources: files[:1]},
				{Path: filepath.Join(in, "b.xlsx"), Sources: files[1:]},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Plan(in, tt.output, tt.merge, files, ".xlsx"))
		})
	}
}
