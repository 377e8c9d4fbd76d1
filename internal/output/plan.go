// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"os"
	"path/filepath"
	"strings"
)

// MergedStem is the file name stem of a merged table written without an
// explicit output path.
const MergedStem = "merged_output"

// Target is one table to write and the inputs whose rows it holds.
type Target struct {
	Path    string
	Sources []string
}

// Plan decides where tables go.
//
// With merge, all files share one table at output, or at
// merged_output<ext> in the parent of input when output is empty.
// Otherwise each file gets its own table: <stem><ext> inside output when
// output is an existing directory, output itself when it names a file, or
// the input path with its extension replaced.
func Plan(input, output string, merge bool, files []string, ext string) []Target {
	if merge {
		path := output
		if path == "" {
			path = filepath.Join(filepath.Dir(filepath.Clean(input)), MergedStem+ext)
		}
		return []Target{{Path: path, Sources: files}}
	}

	outDir := output != "" && isDir(output)
	targets := make([]Target, 0, len(files))
	for _, f := range files {
		var path string
		switch {
		case outDir:
			path = filepath.Join(output, stem(f)+ext)
		case output != "":
			path = output
		default:
			path = strings.TrimSuffix(f, filepath.Ext(f)) + ext
		}
		targets = append(targets, Target{Path: path, Sources: []string{f}})
	}
	return targets
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
