// Package stats computes the aggregate views over the unified dataset.
//
// Every function is a pure read of an already-normalized dataset and
// tolerates an empty dataset by returning empty or zeroed results; "no
// data available" is an expected outcome, not a failure.
package stats

import (
	"sort"
	"strings"

	"github.com/mkarlsen/arxdash/internal/paper"
)

// CategoryCount is one row of the category distribution.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// AuthorCount is one row of an author frequency ranking.
type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

// CategorySummary holds the per-category summary statistics.
type CategorySummary struct {
	Category       string `json:"category"`
	Papers         int    `json:"papers"`
	UniqueAuthors  int    `json:"unique_authors"`
	UniqueSubjects int    `json:"unique_subjects"`
}

// Pivot is the subject-by-category cross-tabulation. Cells[i][j] is the
// number of records in Categories[j] carrying Subjects[i]; combinations
// that never co-occur hold 0. Both axes are ordered first-seen across the
// exploded (record, subject) pairs; records with zero subjects contribute
// nothing to either axis.
type Pivot struct {
	Subjects   []string `json:"subjects"`
	Categories []string `json:"categories"`
	Cells      [][]int  `json:"cells"`
}

// Cell returns the count for a subject/category pair, 0 when either axis
// value is absent from the pivot.
func (p *Pivot) Cell(subject, category string) int {
	si := -1
	for i, s := range p.Subjects {
		if s == subject {
			si = i
			break
		}
	}
	if si < 0 {
		return 0
	}
	for j, c := range p.Categories {
		if c == category {
			return p.Cells[si][j]
		}
	}
	return 0
}

// CategoryCounts returns the row count of every category present in the
// dataset, descending by count, ties broken by first-seen category.
func CategoryCounts(ds []paper.Paper) []CategoryCount {
	counts := make(map[string]int)
	order := []string{}
	for _, p := range ds {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}

	out := make([]CategoryCount, 0, len(order))
	for _, c := range order {
		out = append(out, CategoryCount{Category: c, Count: counts[c]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// SubjectCategoryPivot cross-tabulates exploded subjects against
// categories.
func SubjectCategoryPivot(ds []paper.Paper) *Pivot {
	p := &Pivot{Subjects: []string{}, Categories: []string{}, Cells: [][]int{}}
	subjectIdx := make(map[string]int)
	categoryIdx := make(map[string]int)

	for _, rec := range ds {
		for _, subject := range rec.Subjects {
			si, ok := subjectIdx[subject]
			if !ok {
				si = len(p.Subjects)
				subjectIdx[subject] = si
				p.Subjects = append(p.Subjects, subject)
				p.Cells = append(p.Cells, make([]int, len(p.Categories)))
			}
			ci, ok := categoryIdx[rec.Category]
			if !ok {
				ci = len(p.Categories)
				categoryIdx[rec.Category] = ci
				p.Categories = append(p.Categories, rec.Category)
				for i := range p.Cells {
					p.Cells[i] = append(p.Cells[i], 0)
				}
			}
			p.Cells[si][ci]++
		}
	}

	return p
}

// AuthorFrequency counts exploded author mentions within one category,
// descending by count, ties broken by first mention, truncated to topN.
// A category with no records or no author mentions yields an empty slice.
func AuthorFrequency(ds []paper.Paper, category string, topN int) []AuthorCount {
	if topN <= 0 {
		return []AuthorCount{}
	}

	counts := make(map[string]int)
	order := []string{}
	for _, rec := range ds {
		if rec.Category != category {
			continue
		}
		for _, author := range rec.Authors {
			if _, seen := counts[author]; !seen {
				order = append(order, author)
			}
			counts[author]++
		}
	}

	out := make([]AuthorCount, 0, len(order))
	for _, a := range order {
		out = append(out, AuthorCount{Author: a, Count: counts[a]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// TopAuthor returns the most frequently mentioned author across the whole
// dataset, ties broken by first mention, or "" when there are no author
// mentions.
func TopAuthor(ds []paper.Paper) string {
	counts := make(map[string]int)
	order := []string{}
	for _, rec := range ds {
		for _, author := range rec.Authors {
			if _, seen := counts[author]; !seen {
				order = append(order, author)
			}
			counts[author]++
		}
	}

	best := ""
	bestCount := 0
	for _, a := range order {
		if counts[a] > bestCount {
			best = a
			bestCount = counts[a]
		}
	}
	return best
}

// SummaryStatistics reports, for every category in first-seen order, the
// paper count and the distinct exploded author and subject counts.
// Categories without authors or subjects report 0, never absence.
func SummaryStatistics(ds []paper.Paper) []CategorySummary {
	type acc struct {
		papers   int
		authors  map[string]struct{}
		subjects map[string]struct{}
	}
	byCat := make(map[string]*acc)
	order := []string{}

	for _, rec := range ds {
		a, ok := byCat[rec.Category]
		if !ok {
			a = &acc{
				authors:  make(map[string]struct{}),
				subjects: make(map[string]struct{}),
			}
			byCat[rec.Category] = a
			order = append(order, rec.Category)
		}
		a.papers++
		for _, author := range rec.Authors {
			a.authors[author] = struct{}{}
		}
		for _, subject := range rec.Subjects {
			a.subjects[subject] = struct{}{}
		}
	}

	out := make([]CategorySummary, 0, len(order))
	for _, c := range order {
		a := byCat[c]
		out = append(out, CategorySummary{
			Category:       c,
			Papers:         a.papers,
			UniqueAuthors:  len(a.authors),
			UniqueSubjects: len(a.subjects),
		})
	}
	return out
}

// TitleText joins the clean titles of one category into a single
// space-separated text blob for downstream text widgets.
func TitleText(ds []paper.Paper, category string) string {
	titles := []string{}
	for _, rec := range ds {
		if rec.Category == category {
			titles = append(titles, rec.CleanTitle)
		}
	}
	return strings.Join(titles, " ")
}
