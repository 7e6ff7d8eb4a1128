package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/arxdash/internal/stats"
)

var (
	authorsCategory string
	authorsTop      int
)

func init() {
	authorsCmd.Flags().StringVar(&authorsCategory, "category", "", "Category to rank authors in")
	authorsCmd.Flags().IntVar(&authorsTop, "top", 0, "Number of authors to return (0 = configured default)")
	authorsCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(authorsCmd)
}

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Rank authors by paper mentions within a category",
	Long: `Rank authors by the number of paper mentions within one
category, descending, ties broken by first mention. A category with no
papers or no author mentions yields an empty ranking, not an error.

Examples:
  arxdash authors --category ai
  arxdash authors --category ai --top 25`,
	Args: cobra.NoArgs,
	RunE: runAuthors,
}

func runAuthors(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)

	topN := authorsTop
	if topN <= 0 {
		topN = cfg.ResolveTopAuthors()
	}

	ds, _ := mustLoadDataset()
	ranking := stats.AuthorFrequency(ds, authorsCategory, topN)

	if humanOutput {
		if len(ranking) == 0 {
			fmt.Printf("No author mentions in category %q\n", authorsCategory)
			return nil
		}
		for i, a := range ranking {
			fmt.Printf("%2d. %-40s %d\n", i+1, a.Author, a.Count)
		}
		return nil
	}
	return outputJSON(ranking)
}
