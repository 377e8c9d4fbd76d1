// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.rtf>",
	Short: "Show the articles recovered from one RTF export",
	Long: `Inspect converts a single export and prints the recovered articles as
a table without writing any output file. Use it to check how a new export
variant is segmented before converting a whole directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	showBody, _ := cmd.Flags().GetBool("body")

	p, err := newPipeline()
	if err != nil {
		return err
	}
	rows, err := p.ConvertFile(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("No articles found.")
		return nil
	}

	header := table.Row{"#", "Title", "Time", "Publisher", "IPD", "Lang", "Words", "Regions", "Companies"}
	if showBody {
		header = append(header, "Body")
	}
	t := newTable(os.Stdout, header)
	for i, r := range rows {
		line := table.Row{
			i + 1, clip(r.Title, width), r.Timestamp, clip(r.Publisher, 20), r.IPD,
			r.Language, r.WordCount, clip(r.Regions, 24), clip(r.Companies, 30),
		}
		if showBody {
			line = append(line, clip(r.Body, width))
		}
		t.AppendRow(line)
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d articles", len(rows))})
	t.Render()
	return nil
}

func init() {
	inspectCmd.Flags().Int("width", 40, "maximum display width of title and body columns")
	inspectCmd.Flags().Bool("body", false, "include the start of each body")

	rootCmd.AddCommand(inspectCmd)
}
