// Package normalize turns raw loaded rows into fully-typed papers.
//
// Multi-valued fields follow one documented split rule: a field that is
// present in the source file (even as an empty string) is split strictly
// on its delimiter, so an empty present value yields a single empty-string
// element, matching naive split semantics. A field that is absent (missing
// column or short row) yields an empty, non-nil slice. Token content is
// preserved exactly, including surrounding whitespace.
package normalize

import (
	"strings"

	"github.com/mkarlsen/arxdash/internal/paper"
)

const (
	// AuthorDelimiter separates authors in the raw authors column.
	AuthorDelimiter = ";"
	// SubjectDelimiter separates subjects in the raw subjects column.
	SubjectDelimiter = ","
)

// Dataset normalizes every raw row into a Paper. Row count, row order and
// category tags are preserved; only field shapes change.
func Dataset(rows []paper.RawPaper) []paper.Paper {
	papers := make([]paper.Paper, len(rows))
	for i, row := range rows {
		papers[i] = Record(row)
	}
	return papers
}

// Record normalizes a single raw row.
func Record(row paper.RawPaper) paper.Paper {
	return paper.Paper{
		ArxivID:         row.ArxivID.Value,
		Title:           row.Title.Value,
		CleanTitle:      CleanTitle(row.Title.Value),
		Authors:         SplitField(row.Authors, AuthorDelimiter),
		Subjects:        SplitField(row.Subjects, SubjectDelimiter),
		Category:        row.Category,
		AbstractURL:     row.AbstractURL.Value,
		PDFURL:          row.PDFURL.Value,
		HTMLURL:         row.HTMLURL.Value,
		OtherFormatsURL: row.OtherFormatsURL.Value,
	}
}

// SplitField applies the package split rule to one raw field.
func SplitField(f paper.RawField, delimiter string) []string {
	if !f.Present {
		return []string{}
	}
	return strings.Split(f.Value, delimiter)
}

// CleanTitle keeps only ASCII letters, digits and spaces from a title,
// preserving the order of kept characters.
func CleanTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, c := range []byte(title) {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == ' ':
			b.WriteByte(c)
		}
	}
	return b.String()
}
