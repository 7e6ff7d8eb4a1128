package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/arxdash/internal/stats"
)

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the paper count per category",
	Long: `Show the paper count for every category in the dataset, sorted
descending by count with ties broken by load order.`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	ds, _ := mustLoadDataset()
	counts := stats.CategoryCounts(ds)

	if humanOutput {
		if len(counts) == 0 {
			fmt.Println("No categories in dataset")
			return nil
		}
		for _, c := range counts {
			fmt.Printf("%-24s %d\n", c.Category, c.Count)
		}
		return nil
	}
	return outputJSON(counts)
}
