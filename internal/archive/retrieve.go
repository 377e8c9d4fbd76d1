// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/factiva-engine/pkg/types"
)

// QueryOptions holds parameters for archive queries. All filters combine
// with AND semantics.
type QueryOptions struct {
	// Query is an FTS5 match expression over title and body.
	Query string

	// Region, Industry and Company match one whole entry of the
	// corresponding list.
	Region   string
	Industry string
	Company  string

	Publisher string
	Language  string

	// Source restricts results to one converted file.
	Source string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Region == "" && q.Industry == "" && q.Company == "" &&
		q.Publisher == "" && q.Language == "" && q.Source == ""
}

// Record is a stored article.
type Record struct {
	ID         string   `json:"id" yaml:"id"`
	Source     string   `json:"source" yaml:"source"`
	Title      string   `json:"title" yaml:"title"`
	Author     string   `json:"author" yaml:"author"`
	Published  string   `json:"published" yaml:"published"`
	Language   string   `json:"language" yaml:"language"`
	Publisher  string   `json:"publisher" yaml:"publisher"`
	IPD        string   `json:"ipd" yaml:"ipd"`
	FileID     string   `json:"file_id" yaml:"file_id"`
	WordCount  int      `json:"word_count" yaml:"word_count"`
	Topics     []string `json:"topics" yaml:"topics"`
	Regions    []string `json:"regions" yaml:"regions"`
	Industries []string `json:"industries" yaml:"industries"`
	Companies  []string `json:"companies" yaml:"companies"`
	Body       string   `json:"body" yaml:"body"`
}

// Row flattens the record back into an exportable row.
func (r Record) Row() types.Row {
	return types.Row{
		Title:      r.Title,
		Author:     r.Author,
		Timestamp:  r.Published,
		Language:   r.Language,
		Body:       r.Body,
		IPD:        r.IPD,
		Topics:     strings.Join(r.Topics, types.ListSeparator),
		Regions:    strings.Join(r.Regions, types.ListSeparator),
		Publisher:  r.Publisher,
		FileID:     r.FileID,
		Companies:  strings.Join(r.Companies, types.ListSeparator),
		Industries: strings.Join(r.Industries, types.ListSeparator),
		WordCount:  r.WordCount,
	}
}

const recordColumns = `a.id, a.source, a.title, a.author, a.published, a.language, a.publisher,
	a.ipd, a.file_id, a.word_count, a.topics, a.regions, a.industries, a.companies, a.body`

// Retrieve queries the archive. Full-text queries are ranked by relevance;
// filter-only queries, and text queries without an FTS index, return the
// newest articles first.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]Record, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != "" && s.fts
	)

	if useFTS {
		qb.WriteString(`SELECT ` + recordColumns + `
			FROM articles_fts
			JOIN articles a ON a.rowid = articles_fts.rowid
			WHERE articles_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(`SELECT ` + recordColumns + ` FROM articles a WHERE 1=1`)
		if opts.Query != "" {
			qb.WriteString(` AND (instr(a.title, ?) > 0 OR instr(a.body, ?) > 0)`)
			args = append(args, opts.Query, opts.Query)
		}
	}

	for _, f := range []struct{ column, value string }{
		{"regions", opts.Region},
		{"industries", opts.Industry},
		{"companies", opts.Company},
	} {
		if f.value == "" {
			continue
		}
		qb.WriteString(` AND EXISTS (SELECT 1 FROM json_each(a.` + f.column + `) WHERE value = ?)`)
		args = append(args, f.value)
	}
	if opts.Publisher != "" {
		qb.WriteString(` AND a.publisher = ?`)
		args = append(args, opts.Publisher)
	}
	if opts.Language != "" {
		qb.WriteString(` AND a.language = ?`)
		args = append(args, opts.Language)
	}
	if opts.Source != "" {
		qb.WriteString(` AND a.source = ?`)
		args = append(args, opts.Source)
	}

	if useFTS {
		qb.WriteString(` ORDER BY articles_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY a.published DESC, a.source, a.position`)
	}
	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying archive: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var (
		r                                  Record
		author, language, publisher, ipd   sql.NullString
		fileID, body                       sql.NullString
		topics, regions, industries, firms sql.NullString
		wordCount                          sql.NullInt64
	)
	if err := rows.Scan(
		&r.ID, &r.Source, &r.Title, &author, &r.Published, &language, &publisher,
		&ipd, &fileID, &wordCount, &topics, &regions, &industries, &firms, &body,
	); err != nil {
		return Record{}, fmt.Errorf("scanning row: %w", err)
	}
	r.Author = author.String
	r.Language = language.String
	r.Publisher = publisher.String
	r.IPD = ipd.String
	r.FileID = fileID.String
	r.Body = body.String
	r.WordCount = int(wordCount.Int64)
	r.Topics = decodeList(topics)
	r.Regions = decodeList(regions)
	r.Industries = decodeList(industries)
	r.Companies = decodeList(firms)
	return r, nil
}

func decodeList(s sql.NullString) []string {
	if !s.Valid || s.String == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(s.String), &list); err != nil || len(list) == 0 {
		return nil
	}
	return list
}
