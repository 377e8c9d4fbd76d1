// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output writes article rows as CSV, XLSX, JSON or YAML tables and
// decides where each table goes.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/factiva-engine/pkg/types"
)

// SheetName is the worksheet holding the rows in XLSX output.
const SheetName = "Articles"

// utf8BOM lets spreadsheet applications detect the encoding of CSV output.
const utf8BOM = "\xef\xbb\xbf"

// Writer serializes rows in one table format.
type Writer interface {
	Write(w io.Writer, rows []types.Row) error
}

// ParseFormat validates a format name. Empty selects CSV.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return types.FormatCSV, nil
	case types.FormatCSV, types.FormatXLSX, types.FormatJSON, types.FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want csv, xlsx, json or yaml)", s)
	}
}

// New returns the writer for format.
func New(format types.OutputFormat) (Writer, error) {
	switch format {
	case types.FormatCSV, "":
		return csvWriter{}, nil
	case types.FormatXLSX:
		return xlsxWriter{}, nil
	case types.FormatJSON:
		return jsonWriter{}, nil
	case types.FormatYAML:
		return yamlWriter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// WriteFile writes rows to path, creating parent directories as needed.
func WriteFile(path string, format types.OutputFormat, rows []types.Row) error {
	wr, err := New(format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := wr.Write(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

type csvWriter struct{}

func (csvWriter) Write(w io.Writer, rows []types.Row) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(types.Columns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type xlsxWriter struct{}

func (xlsxWriter) Write(w io.Writer, rows []types.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]any, len(types.Columns))
	for i, c := range types.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		vals := r.Values()
		line := make([]any, len(vals))
		for j, v := range vals {
			line[j] = v
		}
		// Word count stays numeric so spreadsheets can sum it.
		line[len(line)-1] = r.WordCount
		if err := f.SetSheetRow(SheetName, cell, &line); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	return f.Write(w)
}

type jsonWriter struct{}

func (jsonWriter) Write(w io.Writer, rows []types.Row) error {
	if rows == nil {
		rows = []types.Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(rows)
}

type yamlWriter struct{}

func (yamlWriter) Write(w io.Writer, rows []types.Row) error {
	if rows == nil {
		rows = []types.Row{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return err
	}
	return enc.Close()
}
