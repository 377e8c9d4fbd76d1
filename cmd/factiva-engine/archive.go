// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/factiva-engine/internal/archive"
	"github.com/pdiddy/factiva-engine/internal/convert"
	"github.com/pdiddy/factiva-engine/pkg/types"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage the article archive (store, retrieve, export)",
	Long: `Archive keeps converted articles in a local SQLite database with a
full-text index over titles and bodies. Use subcommands to store exports,
query them, or export the archive.`,
}

// --- store subcommand ---

var archiveStoreCmd = &cobra.Command{
	Use:   "store <file|dir>",
	Short: "Convert RTF exports and store their articles",
	Long: `Store converts an RTF export, or every .rtf file in a directory, and
stores the recovered articles. Storing a file again replaces the articles
previously stored for it.`,
	Args: cobra.ExactArgs(1),
	RunE: runArchiveStore,
}

func runArchiveStore(cmd *cobra.Command, args []string) error {
	files, err := convert.FindInputs(args[0])
	if err != nil {
		return err
	}
	p, err := newPipeline()
	if err != nil {
		return err
	}

	workers, _ := cmd.Flags().GetInt("workers")
	result := convert.ConvertBatch(cmd.Context(), p, files, workers, os.Stdout)
	if err := archiveBatch(cmd.Context(), result); err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed conversion", result.Failed)
	}
	return nil
}

// --- retrieve subcommand ---

var archiveRetrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Query the archive with full-text search and filters",
	Long: `Retrieve searches stored articles by title and body text, by
structured filters (region, industry, company, publisher, language, source
file), or by a combination of both.`,
	RunE: runArchiveRetrieve,
}

func runArchiveRetrieve(cmd *cobra.Command, args []string) error {
	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --region, --industry, --company, --publisher, --language, or --source")
	}

	store, err := archive.Open(archiveConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRetrieveOutput(records, jsonOutput)
}

func formatRetrieveOutput(records []archive.Record, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if records == nil {
			records = []archive.Record{}
		}
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	t := newTable(os.Stdout, table.Row{"Rank", "Title", "Published", "Publisher", "Regions", "Source"})
	for i, r := range records {
		t.AppendRow(table.Row{
			i + 1, clip(r.Title, 50), r.Published, clip(r.Publisher, 20),
			clip(strings.Join(r.Regions, types.ListSeparator), 24), clip(r.Source, 30),
		})
	}
	t.Render()
	fmt.Printf("\n%d results\n", len(records))
	return nil
}

// --- export subcommand ---

var archiveExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the archive to YAML or JSON",
	Long: `Export writes the whole archive (or a filtered subset) to
export.yaml or export.json in the archive directory. Supports the same
filter flags as retrieve for partial exports.`,
	RunE: runArchiveExport,
}

func runArchiveExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := archive.Open(archiveConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background(), opts)
	case "json":
		path, err = store.ExportJSON(context.Background(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Exported to %s\n", path)
	return nil
}

// --- shared helpers ---

func archiveConfig() types.ArchiveConfig {
	return types.ArchiveConfig{
		Dir:        viper.GetString("archive.dir"),
		MaxResults: viper.GetInt("archive.max_results"),
	}
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) archive.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	opts := archive.QueryOptions{Query: queryText}
	opts.Region, _ = cmd.Flags().GetString("region")
	opts.Industry, _ = cmd.Flags().GetString("industry")
	opts.Company, _ = cmd.Flags().GetString("company")
	opts.Publisher, _ = cmd.Flags().GetString("publisher")
	opts.Language, _ = cmd.Flags().GetString("language")
	opts.Source, _ = cmd.Flags().GetString("source")
	opts.MaxResults, _ = cmd.Flags().GetInt("limit")
	return opts
}

// addFilterFlags registers the query and filter flags shared by retrieve
// and export.
func addFilterFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("query", "", "full-text search over titles and bodies")
	f.String("region", "", "filter by region")
	f.String("industry", "", "filter by industry")
	f.String("company", "", "filter by company")
	f.String("publisher", "", "filter by publisher")
	f.String("language", "", "filter by language label (英文 or 中文)")
	f.String("source", "", "filter by source RTF path")
}

func init() {
	archiveCmd.PersistentFlags().String("archive-dir", "archive", "directory holding articles.db and exports")
	archiveCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")
	_ = viper.BindPFlag("archive.dir", archiveCmd.PersistentFlags().Lookup("archive-dir"))
	_ = viper.BindPFlag("archive.max_results", archiveCmd.PersistentFlags().Lookup("max-results"))

	archiveStoreCmd.Flags().Int("workers", 1, "number of documents converted in parallel")

	addFilterFlags(archiveRetrieveCmd)
	archiveRetrieveCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	archiveRetrieveCmd.Flags().Bool("json", false, "output results as JSON")

	addFilterFlags(archiveExportCmd)
	archiveExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	archiveCmd.AddCommand(archiveStoreCmd)
	archiveCmd.AddCommand(archiveRetrieveCmd)
	archiveCmd.AddCommand(archiveExportCmd)

	rootCmd.AddCommand(archiveCmd)
}
