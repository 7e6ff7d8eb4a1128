package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/arxdash/internal/stats"
)

func init() {
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-category summary statistics and overview metrics",
	Long: `Show per-category summary statistics (paper count, distinct
authors, distinct subjects) plus dataset-wide overview metrics: total
papers, average papers per category, and the most frequent author.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

// SummaryResult is the response for the summary command.
type SummaryResult struct {
	TotalPapers    int                     `json:"total_papers"`
	AvgPerCategory float64                 `json:"avg_per_category"`
	TopAuthor      string                  `json:"top_author"`
	Categories     []stats.CategorySummary `json:"categories"`
}

func runSummary(cmd *cobra.Command, args []string) error {
	ds, _ := mustLoadDataset()
	summaries := stats.SummaryStatistics(ds)

	avg := 0.0
	if len(summaries) > 0 {
		avg = float64(len(ds)) / float64(len(summaries))
	}

	result := SummaryResult{
		TotalPapers:    len(ds),
		AvgPerCategory: avg,
		TopAuthor:      stats.TopAuthor(ds),
		Categories:     summaries,
	}

	if humanOutput {
		fmt.Printf("Total papers:       %d\n", result.TotalPapers)
		fmt.Printf("Avg per category:   %.1f\n", result.AvgPerCategory)
		if result.TopAuthor != "" {
			fmt.Printf("Top author:         %s\n", result.TopAuthor)
		} else {
			fmt.Printf("Top author:         %s\n", URLPlaceholder)
		}
		fmt.Println()
		fmt.Printf("%-24s %8s %8s %9s\n", "category", "papers", "authors", "subjects")
		for _, s := range result.Categories {
			fmt.Printf("%-24s %8d %8d %9d\n", s.Category, s.Papers, s.UniqueAuthors, s.UniqueSubjects)
		}
		return nil
	}
	return outputJSON(result)
}
