package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/arxdash/internal/paper"
)

var (
	papersCategory string
	papersLimit    int
)

func init() {
	papersCmd.Flags().StringVar(&papersCategory, "category", "", "Only list papers in this category")
	papersCmd.Flags().IntVar(&papersLimit, "limit", 0, "Maximum results to return (0 = all)")
	rootCmd.AddCommand(papersCmd)
}

var papersCmd = &cobra.Command{
	Use:   "papers",
	Short: "List papers from the unified dataset",
	Long: `List papers from the unified dataset, optionally filtered by
category. Absent URL fields are reported as "N/A" placeholders.

Examples:
  arxdash papers
  arxdash papers --category ai --limit 20`,
	Args: cobra.NoArgs,
	RunE: runPapers,
}

// PaperListing is one row of the papers command output, with URL
// placeholders applied.
type PaperListing struct {
	ArxivID     string   `json:"arxiv_id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Authors     []string `json:"authors"`
	Subjects    []string `json:"subjects"`
	AbstractURL string   `json:"abstract_url"`
	PDFURL      string   `json:"pdf_url"`
	HTMLURL     string   `json:"html_url"`
}

func runPapers(cmd *cobra.Command, args []string) error {
	ds, _ := mustLoadDataset()

	listings := []PaperListing{}
	for _, p := range ds {
		if papersCategory != "" && p.Category != papersCategory {
			continue
		}
		listings = append(listings, listPaper(p))
		if papersLimit > 0 && len(listings) >= papersLimit {
			break
		}
	}

	if humanOutput {
		if len(listings) == 0 {
			fmt.Println("No papers to display")
			return nil
		}
		for _, l := range listings {
			fmt.Printf("  %-16s %-12s %s\n", l.ArxivID, l.Category, truncateString(l.Title, ListTitleMaxLen))
		}
		return nil
	}
	return outputJSON(listings)
}

func listPaper(p paper.Paper) PaperListing {
	return PaperListing{
		ArxivID:     p.ArxivID,
		Title:       p.Title,
		Category:    p.Category,
		Authors:     p.Authors,
		Subjects:    p.Subjects,
		AbstractURL: orPlaceholder(p.AbstractURL),
		PDFURL:      orPlaceholder(p.PDFURL),
		HTMLURL:     orPlaceholder(p.HTMLURL),
	}
}
