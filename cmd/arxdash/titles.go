package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/arxdash/internal/stats"
)

var titlesCategory string

func init() {
	titlesCmd.Flags().StringVar(&titlesCategory, "category", "", "Category to collect titles from")
	titlesCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(titlesCmd)
}

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Emit the cleaned title text of one category",
	Long: `Emit the cleaned titles of one category joined into a single
text blob, as consumed by word-frequency and word-cloud widgets.`,
	Args: cobra.NoArgs,
	RunE: runTitles,
}

// TitleTextResult is the response for the titles command.
type TitleTextResult struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

func runTitles(cmd *cobra.Command, args []string) error {
	ds, _ := mustLoadDataset()
	text := stats.TitleText(ds, titlesCategory)

	if humanOutput {
		fmt.Println(text)
		return nil
	}
	return outputJSON(TitleTextResult{Category: titlesCategory, Text: text})
}
