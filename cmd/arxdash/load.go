package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/arxdash/internal/loader"
	"github.com/mkarlsen/arxdash/internal/stats"
)

func init() {
	rootCmd.AddCommand(loadCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the data directory and report what was ingested",
	Long: `Load every category CSV in the data directory, normalize the
rows, and report per-category row counts plus any per-file diagnostics.

Files that fail to parse are reported and skipped; they never abort the
load. Exits with a data error when zero rows were loaded overall.`,
	Args: cobra.NoArgs,
	RunE: runLoad,
}

// LoadResult is the response for the load command.
type LoadResult struct {
	Rows        int                   `json:"rows"`
	Categories  []stats.CategoryCount `json:"categories"`
	Diagnostics []loader.Diagnostic   `json:"diagnostics"`
}

func runLoad(cmd *cobra.Command, args []string) error {
	ds, diags := mustLoadDataset()

	if len(ds) == 0 {
		if humanOutput {
			fmt.Fprintln(os.Stderr, "error: no data available to display")
		} else {
			outputJSON(LoadResult{
				Rows:        0,
				Categories:  []stats.CategoryCount{},
				Diagnostics: diagList(diags),
			})
		}
		os.Exit(ExitDataError)
	}

	result := LoadResult{
		Rows:        len(ds),
		Categories:  stats.CategoryCounts(ds),
		Diagnostics: diagList(diags),
	}

	if humanOutput {
		fmt.Printf("%d papers loaded from %d categories\n", result.Rows, len(result.Categories))
		for _, c := range result.Categories {
			fmt.Printf("  %-24s %d\n", c.Category, c.Count)
		}
		if len(result.Diagnostics) > 0 {
			fmt.Printf("%d file(s) skipped\n", len(result.Diagnostics))
		}
		return nil
	}
	return outputJSON(result)
}

// diagList normalizes a nil diagnostics slice for JSON output.
func diagList(diags []loader.Diagnostic) []loader.Diagnostic {
	if diags == nil {
		return []loader.Diagnostic{}
	}
	return diags
}
