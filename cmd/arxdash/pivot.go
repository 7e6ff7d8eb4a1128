package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/arxdash/internal/stats"
)

func init() {
	rootCmd.AddCommand(pivotCmd)
}

var pivotCmd = &cobra.Command{
	Use:   "pivot",
	Short: "Cross-tabulate subjects against categories",
	Long: `Cross-tabulate exploded subjects against categories. Each cell
counts the papers in a category carrying a subject; combinations that
never co-occur show 0. Papers without subjects contribute nothing.`,
	Args: cobra.NoArgs,
	RunE: runPivot,
}

func runPivot(cmd *cobra.Command, args []string) error {
	ds, _ := mustLoadDataset()
	pivot := stats.SubjectCategoryPivot(ds)

	if humanOutput {
		if len(pivot.Subjects) == 0 {
			fmt.Println("No subjects in dataset")
			return nil
		}
		fmt.Printf("%-40s", "subject")
		for _, c := range pivot.Categories {
			fmt.Printf(" %12s", truncateString(c, 12))
		}
		fmt.Println()
		for i, s := range pivot.Subjects {
			fmt.Printf("%-40s", truncateString(s, 40))
			for j := range pivot.Categories {
				fmt.Printf(" %12d", pivot.Cells[i][j])
			}
			fmt.Println()
		}
		return nil
	}
	return outputJSON(pivot)
}
