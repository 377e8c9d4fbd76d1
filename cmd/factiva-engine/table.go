// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
)

// newTable returns a console table writing to w in the CLI's style.
func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

// clip flattens s to one line and truncates it to width display columns.
// CJK characters count as two columns.
func clip(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.Truncate(s, width, "...")
}
