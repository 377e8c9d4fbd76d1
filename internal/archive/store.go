// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps converted articles in a SQLite database with a
// full-text index so that earlier exports can be searched and re-exported.
//
// Full-text search uses FTS5 when go-sqlite3 is built with the sqlite_fts5
// tag. Without it, queries fall back to substring matching.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"

	"github.com/pdiddy/factiva-engine/pkg/types"
)

const (
	dbFile            = "articles.db"
	defaultMaxResults = 20
)

// Store manages the article archive database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
	// fts reports whether the articles_fts index is available.
	fts        bool
	now        func() time.Time
}

// Open opens or creates the archive at cfg.Dir/articles.db and creates the
// schema if it does not exist.
func Open(cfg types.ArchiveConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{
		db:         db,
		dir:        cfg.Dir,
		maxResults: maxResults,
		now:        time.Now,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the archive directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sources (
			path TEXT PRIMARY KEY,
			stored_at TEXT NOT NULL,
			articles INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS articles (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			source TEXT NOT NULL REFERENCES sources(path),
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			author TEXT,
			published TEXT NOT NULL,
			language TEXT,
			body TEXT,
			ipd TEXT,
			publisher TEXT,
			file_id TEXT,
			word_count INTEGER,
			topics TEXT,
			regions TEXT,
			industries TEXT,
			companies TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_source ON articles(source)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_published ON articles(published)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_publisher ON articles(publisher)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='articles_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}
	if ftsExists > 0 {
		s.fts = true
		return nil
	}

	ftsStatements := []string{
		`CREATE VIRTUAL TABLE articles_fts USING fts5(title, body, content=articles, content_rowid=rowid)`,
		`CREATE TRIGGER articles_ai AFTER INSERT ON articles BEGIN
			INSERT INTO articles_fts(rowid, title, body) VALUES (new.rowid, new.title, new.body);
		END`,
		`CREATE TRIGGER articles_ad AFTER DELETE ON articles BEGIN
			INSERT INTO articles_fts(articles_fts, rowid, title, body) VALUES('delete', old.rowid, old.title, old.body);
		END`,
		`CREATE TRIGGER articles_au AFTER UPDATE ON articles BEGIN
			INSERT INTO articles_fts(articles_fts, rowid, title, body) VALUES('delete', old.rowid, old.title, old.body);
			INSERT INTO articles_fts(rowid, title, body) VALUES (new.rowid, new.title, new.body);
		END`,
	}
	for i, stmt := range ftsStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			if i == 0 && strings.Contains(err.Error(), "no such module") {
				return nil
			}
			return fmt.Errorf("creating FTS infrastructure: %w", err)
		}
	}
	s.fts = true
	return nil
}

// StoreSummary reports the effect of storing one source file.
type StoreSummary struct {
	Source   string
	Stored   int
	Replaced int
}

// Put stores the rows converted from source. Rows previously stored for
// the same source are replaced in one transaction, so re-running a
// conversion never duplicates articles.
func (s *Store) Put(ctx context.Context, source string, rows []types.Row) (StoreSummary, error) {
	summary := StoreSummary{Source: source}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM articles WHERE source = ?`, source)
	if err != nil {
		return summary, fmt.Errorf("deleting old articles: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		summary.Replaced = int(n)
	}

	now := s.now().UTC()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO sources (path, stored_at, articles) VALUES (?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET stored_at=excluded.stored_at, articles=excluded.articles`,
		source, now.Format(time.RFC3339), len(rows),
	)
	if err != nil {
		return summary, fmt.Errorf("upserting source: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO articles (id, source, position, title, author, published, language, body,
			ipd, publisher, file_id, word_count, topics, regions, industries, companies)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return summary, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rows {
		_, err = stmt.ExecContext(ctx,
			ulid.Make().String(), source, i, r.Title, r.Author, r.Timestamp, r.Language, r.Body,
			r.IPD, r.Publisher, r.FileID, r.WordCount,
			listJSON(r.Topics), listJSON(r.Regions), listJSON(r.Industries), listJSON(r.Companies),
		)
		if err != nil {
			return summary, fmt.Errorf("inserting article %d: %w", i, err)
		}
		summary.Stored++
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing: %w", err)
	}
	return summary, nil
}

// Count returns the number of stored articles.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM articles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting articles: %w", err)
	}
	return n, nil
}

// listJSON stores a "; "-joined row field as a JSON array so filters can
// match whole entries.
func listJSON(field string) string {
	list := types.SplitList(field)
	if list == nil {
		list = []string{}
	}
	data, _ := json.Marshal(list)
	return string(data)
}
