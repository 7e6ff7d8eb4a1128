// Package loader reads category source files into the unified dataset.
//
// Each CSV file in the data directory is one category; every row loaded
// from a file is tagged with the category derived from the file's base
// name. A file that fails to parse is reported as a diagnostic and
// contributes zero rows; it never aborts the load of the other files.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mkarlsen/arxdash/internal/discover"
	"github.com/mkarlsen/arxdash/internal/paper"
)

// maxConcurrentReads bounds the number of category files read in parallel.
const maxConcurrentReads = 4

// requiredColumns must all be present in a file's header row.
var requiredColumns = []string{"arxiv_id", "title", "authors", "subjects"}

// Diagnostic records a non-fatal per-file load failure.
type Diagnostic struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.File, d.Reason)
}

// EmptyDatasetError signals that zero rows were loaded after attempting
// every discovered file. FilesAttempted distinguishes an empty data
// directory (0) from a directory where every file failed to parse (>0,
// with one diagnostic per file).
type EmptyDatasetError struct {
	FilesAttempted int
}

func (e *EmptyDatasetError) Error() string {
	if e.FilesAttempted == 0 {
		return "no category files found in the data directory"
	}
	return fmt.Sprintf("no rows loaded from %d category file(s)", e.FilesAttempted)
}

// IsEmptyDataset reports whether err is an EmptyDatasetError.
func IsEmptyDataset(err error) bool {
	var e *EmptyDatasetError
	return errors.As(err, &e)
}

// LoadDir discovers the categories in dir and loads them.
func LoadDir(dir string) ([]paper.RawPaper, []Diagnostic, error) {
	categories, err := discover.Categories(dir)
	if err != nil {
		return nil, nil, err
	}
	return Load(dir, categories)
}

// Load reads the given categories from dir and concatenates the rows of
// every successfully parsed file, category order preserved, row order
// within a category preserved. Files are read concurrently; results are
// slotted by category index so concurrency never reorders output.
func Load(dir string, categories []string) ([]paper.RawPaper, []Diagnostic, error) {
	type result struct {
		rows []paper.RawPaper
		diag *Diagnostic
	}
	results := make([]result, len(categories))

	var g errgroup.Group
	g.SetLimit(maxConcurrentReads)
	for i, category := range categories {
		i, category := i, category
		g.Go(func() error {
			path := discover.FilePath(dir, category)
			rows, err := loadFile(path, category)
			if err != nil {
				results[i] = result{diag: &Diagnostic{
					File:   filepath.Base(path),
					Reason: err.Error(),
				}}
				return nil
			}
			results[i] = result{rows: rows}
			return nil
		})
	}
	g.Wait() // per-file failures become diagnostics, never group errors

	var rows []paper.RawPaper
	var diags []Diagnostic
	for _, r := range results {
		if r.diag != nil {
			diags = append(diags, *r.diag)
			continue
		}
		rows = append(rows, r.rows...)
	}

	if len(rows) == 0 {
		return nil, diags, &EmptyDatasetError{FilesAttempted: len(categories)}
	}
	return rows, diags, nil
}

// loadFile parses one category CSV into raw rows. Any failure (unreadable
// file, malformed CSV, missing required columns) fails the whole file.
func loadFile(path, category string) ([]paper.RawPaper, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // short rows yield absent fields, not errors

	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.New("file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	var rows []paper.RawPaper
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", line, err)
		}

		rows = append(rows, paper.RawPaper{
			ArxivID:         cell(record, cols, "arxiv_id"),
			Title:           cell(record, cols, "title"),
			Authors:         cell(record, cols, "authors"),
			Subjects:        cell(record, cols, "subjects"),
			AbstractURL:     cell(record, cols, "abstract_url"),
			PDFURL:          cell(record, cols, "pdf_url"),
			HTMLURL:         cell(record, cols, "html_url"),
			OtherFormatsURL: cell(record, cols, "other_formats_url"),
			Category:        category,
		})
	}

	return rows, nil
}

// cell extracts a named column from a record, absent when the column is
// not in the header or the record is too short to carry it.
func cell(record []string, cols map[string]int, name string) paper.RawField {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return paper.RawField{}
	}
	return paper.Field(record[idx])
}
