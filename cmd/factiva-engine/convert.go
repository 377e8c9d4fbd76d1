// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/factiva-engine/internal/archive"
	"github.com/pdiddy/factiva-engine/internal/convert"
	"github.com/pdiddy/factiva-engine/internal/logger"
	"github.com/pdiddy/factiva-engine/internal/output"
	"github.com/pdiddy/factiva-engine/internal/taxonomy"
	"github.com/pdiddy/factiva-engine/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert Factiva RTF exports to article tables",
	Long: `Convert reads one RTF export or every .rtf file in a directory and
writes one row per recovered article.

Without --output each table is written next to its input. When --output
is an existing directory, tables are written into it; otherwise it names
the output file. With --merge all rows go into a single table, by default
merged_output.<format> next to the input.

A document that fails to convert is reported and skipped; the command
exits non-zero once the rest of the batch is written.`,
	Example: `  factiva-engine convert -i input.rtf
  factiva-engine convert -i rtf_files/
  factiva-engine convert -i rtf_files/ -o merged.xlsx -m --format xlsx
  factiva-engine convert -i rtf_files/ -o output/ --workers 4`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := convertConfig()
	if err != nil {
		return err
	}
	p, err := newPipeline()
	if err != nil {
		return err
	}

	files, err := convert.FindInputs(cfg.Input)
	if err != nil {
		return err
	}
	fmt.Printf("Found %d RTF file(s) to process\n", len(files))
	appLog.Debug("inputs found", logger.Strings("files", files))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result := convert.ConvertBatch(ctx, p, files, cfg.Workers, os.Stdout)
	if err := writeTables(cfg, files, result); err != nil {
		return err
	}

	if toArchive, _ := cmd.Flags().GetBool("archive"); toArchive {
		if err := archiveBatch(ctx, result); err != nil {
			return err
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed conversion", result.Failed)
	}
	return nil
}

// writeTables writes the rows of every successful document to the tables
// planned for the run. A per-file table is skipped when its document failed.
func writeTables(cfg types.ConvertConfig, files []string, result convert.BatchResult) error {
	docs := make(map[string]convert.DocResult, len(result.Docs))
	for _, d := range result.Docs {
		docs[d.Path] = d
	}

	for _, target := range output.Plan(cfg.Input, cfg.Output, cfg.Merge, files, cfg.Format.Extension()) {
		var rows []types.Row
		ok := 0
		for _, src := range target.Sources {
			if d := docs[src]; d.Err == nil {
				rows = append(rows, d.Rows...)
				ok++
			}
		}
		if ok == 0 && !cfg.Merge {
			continue
		}
		if err := output.WriteFile(target.Path, cfg.Format, rows); err != nil {
			return err
		}
		if cfg.Merge {
			fmt.Printf("\nOK: merged %d rows from %d files -> %s\n", len(rows), ok, target.Path)
		} else {
			fmt.Printf("  OK: wrote %d rows -> %s\n", len(rows), target.Path)
		}
		appLog.Info("table written",
			logger.String("path", target.Path),
			logger.Int("rows", len(rows)),
			logger.String("format", string(cfg.Format)),
			logger.Bool("merged", cfg.Merge),
		)
	}
	return nil
}

func archiveBatch(ctx context.Context, result convert.BatchResult) error {
	store, err := archive.Open(archiveConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	for _, d := range result.Docs {
		if d.Err != nil {
			continue
		}
		sum, err := store.Put(ctx, d.Path, d.Rows)
		if err != nil {
			return err
		}
		fmt.Printf("archived: %s (%d articles)\n", d.Path, sum.Stored)
	}
	appLog.Info("batch archived", logger.String("dir", store.Dir()))
	return nil
}

func convertConfig() (types.ConvertConfig, error) {
	format, err := output.ParseFormat(viper.GetString("convert.format"))
	if err != nil {
		return types.ConvertConfig{}, err
	}
	cfg := types.ConvertConfig{
		Input:        viper.GetString("convert.input"),
		Output:       viper.GetString("convert.output"),
		Merge:        viper.GetBool("convert.merge"),
		Format:       format,
		Workers:      viper.GetInt("convert.workers"),
		TaxonomyFile: viper.GetString("taxonomy.file"),
	}
	if cfg.Input == "" {
		return cfg, fmt.Errorf("input required: pass -i <file|dir>")
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}

// newPipeline builds the conversion pipeline, applying the taxonomy file
// when one is configured.
func newPipeline() (*convert.Pipeline, error) {
	opts := []convert.Option{convert.WithLogger(appLog)}
	if path := viper.GetString("taxonomy.file"); path != "" {
		tax, err := taxonomy.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, convert.WithTaxonomy(tax))
	}
	return convert.NewPipeline(opts...), nil
}

func init() {
	f := convertCmd.Flags()
	f.StringP("input", "i", "", "input RTF file or directory containing RTF files")
	f.StringP("output", "o", "", "output file or directory (default: next to each input)")
	f.BoolP("merge", "m", false, "merge all results into a single table")
	f.String("format", string(types.FormatCSV), "output format: csv, xlsx, json or yaml")
	f.Int("workers", 1, "number of documents converted in parallel")
	f.Bool("archive", false, "also store converted articles in the archive")

	_ = viper.BindPFlag("convert.input", f.Lookup("input"))
	_ = viper.BindPFlag("convert.output", f.Lookup("output"))
	_ = viper.BindPFlag("convert.merge", f.Lookup("merge"))
	_ = viper.BindPFlag("convert.format", f.Lookup("format"))
	_ = viper.BindPFlag("convert.workers", f.Lookup("workers"))

	rootCmd.AddCommand(convertCmd)
}
