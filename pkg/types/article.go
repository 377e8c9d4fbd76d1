// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the layout of the timestamp column in exported rows.
const TimestampLayout = "2006-01-02 15:04:05"

// Language labels as they appear in Factiva exports.
const (
	LanguageEnglish = "英文"
	LanguageChinese = "中文"
)

// NoBody marks an article whose metadata block runs to the end of the
// document, leaving no line where a body could start.
const NoBody = -1

// Article is one news article recovered from a Factiva export.
// Segmentation fills the structural fields; extraction attaches the body
// and the derived lists once every article boundary is known.
type Article struct {
	// Title is the nearest non-blank line above the word-count line.
	Title string `json:"title" yaml:"title"`

	// Author holds the author lines, joined with AuthorSeparator.
	Author string `json:"author" yaml:"author"`

	// Published is the publication time. Seconds are always zero.
	Published time.Time `json:"published" yaml:"published"`

	// Publisher is the line following the timestamp.
	Publisher string `json:"publisher" yaml:"publisher"`

	// IPD is the short uppercase desk code following the publisher, if any.
	IPD string `json:"ipd" yaml:"ipd"`

	// Language is LanguageEnglish, LanguageChinese, or empty.
	Language string `json:"language" yaml:"language"`

	// Body is the sanitized article text.
	Body string `json:"body" yaml:"body"`

	// Keywords is the raw comma-separated keyword list found in the body.
	Keywords string `json:"keywords" yaml:"keywords"`

	// FileID is the Factiva document identifier (e.g. "PRN0000020240305ek35000ab").
	FileID string `json:"file_id" yaml:"file_id"`

	// WordCount is the count parsed from the word-count line.
	WordCount int `json:"word_count" yaml:"word_count"`

	Topics     []string `json:"topics" yaml:"topics"`
	Regions    []string `json:"regions" yaml:"regions"`
	Industries []string `json:"industries" yaml:"industries"`
	Companies  []string `json:"companies" yaml:"companies"`

	// TitleLine is the line index of the title. The previous article's
	// body ends here.
	TitleLine int `json:"-" yaml:"-"`

	// BodyStart is the line index where the body begins, or NoBody.
	BodyStart int `json:"-" yaml:"-"`
}

// AuthorSeparator joins multiple author lines.
const AuthorSeparator = " | "

// ListSeparator joins the derived lists in flat rows.
const ListSeparator = "; "

// Row is the flat, exportable form of an Article. Field order is the
// column order of every output format.
type Row struct {
	Title      string `json:"title" yaml:"title"`
	Author     string `json:"author" yaml:"author"`
	Timestamp  string `json:"timestamp" yaml:"timestamp"`
	Language   string `json:"language" yaml:"language"`
	Body       string `json:"body" yaml:"body"`
	IPD        string `json:"ipd" yaml:"ipd"`
	Topics     string `json:"topics" yaml:"topics"`
	Regions    string `json:"regions" yaml:"regions"`
	Publisher  string `json:"publisher" yaml:"publisher"`
	FileID     string `json:"file_id" yaml:"file_id"`
	Companies  string `json:"companies" yaml:"companies"`
	Industries string `json:"industries" yaml:"industries"`
	WordCount  int    `json:"word_count" yaml:"word_count"`
}

// Columns are the tabular headers, in Row field order.
var Columns = []string{
	"标题", "作者", "时间", "语言", "正文", "IPD", "关联话题",
	"关联地区", "发行公司", "文件号", "关联公司", "关联行业", "文章字数",
}

// Row flattens the article for export.
func (a Article) Row() Row {
	return Row{
		Title:      a.Title,
		Author:     a.Author,
		Timestamp:  a.Published.Format(TimestampLayout),
		Language:   a.Language,
		Body:       a.Body,
		IPD:        a.IPD,
		Topics:     strings.Join(a.Topics, ListSeparator),
		Regions:    strings.Join(a.Regions, ListSeparator),
		Publisher:  a.Publisher,
		FileID:     a.FileID,
		Companies:  strings.Join(a.Companies, ListSeparator),
		Industries: strings.Join(a.Industries, ListSeparator),
		WordCount:  a.WordCount,
	}
}

// Values returns the row as strings in column order.
func (r Row) Values() []string {
	return []string{
		r.Title, r.Author, r.Timestamp, r.Language, r.Body, r.IPD, r.Topics,
		r.Regions, r.Publisher, r.FileID, r.Companies, r.Industries,
		strconv.Itoa(r.WordCount),
	}
}

// SplitList reverses the ListSeparator join of a row field.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
