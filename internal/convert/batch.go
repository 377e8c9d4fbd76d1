// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/factiva-engine/internal/logger"
	"github.com/pdiddy/factiva-engine/pkg/types"
)

// DocResult is the outcome of converting one document.
type DocResult struct {
	Path string
	Rows []types.Row
	Err  error
}

// BatchResult holds the outcome of a batch conversion run. Docs follows
// the order of the input paths.
type BatchResult struct {
	Converted int
	Empty     int
	Failed    int
	Docs      []DocResult
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Empty + r.Failed
}

// HasFailures reports whether any document failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Rows returns the rows of every successful document, in input order.
func (r BatchResult) Rows() []types.Row {
	var rows []types.Row
	for _, d := range r.Docs {
		rows = append(rows, d.Rows...)
	}
	return rows
}

// ConvertBatch converts paths with up to workers documents in flight and
// returns a summary. Per-file status is printed to w in input order once
// every document has finished. A failing document
// does not stop the others. Cancelling ctx stops documents that have not
// started; they are reported as failed with the context error.
func ConvertBatch(ctx context.Context, p *Pipeline, paths []string, workers int, w io.Writer) BatchResult {
	if workers < 1 {
		workers = 1
	}
	docs := make([]DocResult, len(paths))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			d := DocResult{Path: path}
			if err := ctx.Err(); err != nil {
				d.Err = err
			} else {
				d.Rows, d.Err = p.ConvertFile(path)
			}
			docs[i] = d
			return nil
		})
	}
	_ = g.Wait()

	result := BatchResult{Docs: docs}
	for _, d := range docs {
		name := filepath.Base(d.Path)
		if d.Err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", name, d.Err)
			p.log.Warn("document failed", logger.String("file", d.Path), logger.Error(d.Err))
		} else {
			fmt.Fprintf(w, "converted: %s (%d articles)\n", name, len(d.Rows))
		}
		switch {
		case d.Err != nil:
			result.Failed++
		case len(d.Rows) == 0:
			result.Empty++
		default:
			result.Converted++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d empty, %d failed (total: %d)\n",
		result.Converted, result.Empty, result.Failed, result.Total())
	return result
}
