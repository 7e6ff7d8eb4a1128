package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify dataset integrity",
	Long: `Verify dataset integrity, checking for duplicate arxiv_id values
within a category and for papers missing identifiers or titles. Issues
are reported, never enforced; the dataset loads regardless.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

// CheckResult is the response for the check command.
type CheckResult struct {
	Status string       `json:"status"`
	Papers int          `json:"papers"`
	Issues []CheckIssue `json:"issues"`
}

// CheckIssue represents a single issue found during check.
type CheckIssue struct {
	Type     string `json:"type"`
	Category string `json:"category,omitempty"`
	ArxivID  string `json:"arxiv_id,omitempty"`
	Count    int    `json:"count,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	ds, _ := mustLoadDataset()

	issues := []CheckIssue{}

	// Duplicate arxiv_id within a category (uniqueness is assumed per
	// category, not enforced at load time)
	type key struct{ category, id string }
	seen := make(map[key]int)
	for _, p := range ds {
		if p.ArxivID != "" {
			seen[key{p.Category, p.ArxivID}]++
		}
	}
	for _, p := range ds {
		k := key{p.Category, p.ArxivID}
		if p.ArxivID != "" && seen[k] > 1 {
			issues = append(issues, CheckIssue{
				Type:     "duplicate_arxiv_id",
				Category: k.category,
				ArxivID:  k.id,
				Count:    seen[k],
			})
			seen[k] = 0 // report each duplicate group once
		}
	}

	for _, p := range ds {
		if p.ArxivID == "" {
			issues = append(issues, CheckIssue{Type: "missing_arxiv_id", Category: p.Category})
		}
		if p.Title == "" {
			issues = append(issues, CheckIssue{Type: "missing_title", Category: p.Category, ArxivID: p.ArxivID})
		}
	}

	status := "ok"
	if len(issues) > 0 {
		status = "issues_found"
	}
	result := CheckResult{Status: status, Papers: len(ds), Issues: issues}

	if humanOutput {
		fmt.Printf("%d papers checked: %s\n", result.Papers, result.Status)
		for _, issue := range result.Issues {
			switch issue.Type {
			case "duplicate_arxiv_id":
				fmt.Printf("  duplicate arxiv_id %s in %s (%d rows)\n", issue.ArxivID, issue.Category, issue.Count)
			case "missing_arxiv_id":
				fmt.Printf("  paper without arxiv_id in %s\n", issue.Category)
			case "missing_title":
				fmt.Printf("  paper %s without title in %s\n", issue.ArxivID, issue.Category)
			}
		}
		return nil
	}
	return outputJSON(result)
}
