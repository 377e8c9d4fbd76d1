// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/factiva-engine/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.ArchiveConfig{Dir: filepath.Join(t.TempDir(), "archive")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRows() []types.Row {
	return []types.Row{
		{
			Title:      "Quantum leap for chips",
			Author:     "Jane Doe",
			Timestamp:  "2024-03-05 09:30:00",
			Language:   types.LanguageEnglish,
			Body:       "Acme Robotics Inc. unveiled a quantum processor.",
			IPD:        "RTRS",
			Topics:     "Quantum Computing",
			Regions:    "China; Asia",
			Publisher:  "Reuters",
			FileID:     "RTRS000020240305ek35000ab",
			Companies:  "Acme Robotics Inc.",
			Industries: "Technology",
			WordCount:  1200,
		},
		{
			Title:     "Shipping rates climb",
			Timestamp: "2024-03-06 00:00:00",
			Language:  types.LanguageChinese,
			Body:      "Freight costs rose in Europe.",
			Regions:   "Europe",
			Publisher: "Xinhua",
			WordCount: 80,
		},
	}
}

func TestOpen_Defaults(t *testing.T) {
	s := testStore(t)
	assert.Equal(t, defaultMaxResults, s.maxResults)
	assert.FileExists(t, filepath.Join(s.Dir(), dbFile))

	// Reopening an existing archive keeps the schema.
	s2, err := Open(types.ArchiveConfig{Dir: s.Dir(), MaxResults: 5})
	require.NoError(t, err)
	defer s2.Close()
	assert.Equal(t, 5, s2.maxResults)
	assert.Equal(t, s.fts, s2.fts)
}

func TestPut_ReplacesSource(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	sum, err := s.Put(ctx, "a.rtf", sampleRows())
	require.NoError(t, err)
	assert.Equal(t, StoreSummary{Source: "a.rtf", Stored: 2}, sum)

	sum, err = s.Put(ctx, "a.rtf", sampleRows()[:1])
	require.NoError(t, err)
	assert.Equal(t, StoreSummary{Source: "a.rtf", Stored: 1, Replaced: 2}, sum)

	_, err = s.Put(ctx, "b.rtf", sampleRows())
	require.NoError(t, err)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRetrieve(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)
	_, err := s.Put(ctx, "a.rtf", sampleRows())
	require.NoError(t, err)

	tests := []struct {
		name       string
		opts       QueryOptions
		wantTitles []string
	}{
		{
			name:       "no filters returns newest first",
			opts:       QueryOptions{},
			wantTitles: []string{"Shipping rates climb", "Quantum leap for chips"},
		},
		{
			name:       "text query",
			opts:       QueryOptions{Query: "quantum"},
			wantTitles: []string{"Quantum leap for chips"},
		},
		{
			name:       "region matches a whole list entry",
			opts:       QueryOptions{Region: "Asia"},
			wantTitles: []string{"Quantum leap for chips"},
		},
		{
			name:       "partial region does not match",
			opts:       QueryOptions{Region: "As"},
			wantTitles: nil,
		},
		{
			name:       "company",
			opts:       QueryOptions{Company: "Acme Robotics Inc."},
			wantTitles: []string{"Quantum leap for chips"},
		},
		{
			name:       "publisher and language",
			opts:       QueryOptions{Publisher: "Xinhua", Language: types.LanguageChinese},
			wantTitles: []string{"Shipping rates climb"},
		},
		{
			name:       "source",
			opts:       QueryOptions{Source: "other.rtf"},
			wantTitles: nil,
		},
		{
			name:       "max results",
			opts:       QueryOptions{MaxResults: 1},
			wantTitles: []string{"Shipping rates climb"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := s.Retrieve(ctx, tt.opts)
			require.NoError(t, err)
			var titles []string
			for _, r := range records {
				titles = append(titles, r.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestRecord_RowRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)
	rows := sampleRows()
	_, err := s.Put(ctx, "a.rtf", rows)
	require.NoError(t, err)

	records, err := s.Retrieve(ctx, QueryOptions{Source: "a.rtf"})
	require.NoError(t, err)
	require.Len(t, records, 2)

	r := records[1]
	assert.Len(t, r.ID, 26, "ids are ULIDs")
	assert.Equal(t, "a.rtf", r.Source)
	assert.Equal(t, []string{"China", "Asia"}, r.Regions)
	assert.Nil(t, records[0].Companies)
	assert.Equal(t, rows[0], r.Row())
	assert.Equal(t, rows[1], records[0].Row())
}

func TestQueryOptions_IsEmpty(t *testing.T) {
	assert.True(t, QueryOptions{MaxResults: 3}.IsEmpty())
	assert.False(t, QueryOptions{Region: "China"}.IsEmpty())
	assert.False(t, QueryOptions{Query: "chips"}.IsEmpty())
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)
	_, err := s.Put(ctx, "a.rtf", sampleRows())
	require.NoError(t, err)

	path, err := s.ExportYAML(ctx, QueryOptions{Region: "Europe"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir(), "export.yaml"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var fromYAML []Record
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	require.Len(t, fromYAML, 1)
	assert.Equal(t, "Shipping rates climb", fromYAML[0].Title)

	path, err = s.ExportJSON(ctx, QueryOptions{Publisher: "nobody"})
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	var fromJSON []Record
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Empty(t, fromJSON)
	assert.Equal(t, "[]", string(data))
}
