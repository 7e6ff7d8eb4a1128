// Package snapshot writes rebuildable artifacts of a load cycle for
// downstream consumers: a SQLite database holding the unified dataset and
// its aggregate views, and a JSONL export of the dataset. Snapshots are
// outputs only; the engine itself rebuilds from the source CSVs each run.
package snapshot

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mkarlsen/arxdash/internal/paper"
	"github.com/mkarlsen/arxdash/internal/stats"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite snapshot database.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates a snapshot database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		-- Unified dataset, one row per paper
		CREATE TABLE IF NOT EXISTS papers (
			arxiv_id TEXT,
			title TEXT,
			clean_title TEXT,
			category TEXT NOT NULL,
			authors_json TEXT NOT NULL,
			subjects_json TEXT NOT NULL,
			abstract_url TEXT,
			pdf_url TEXT,
			html_url TEXT,
			other_formats_url TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_papers_category ON papers(category);

		-- Aggregate views, rebuilt wholesale with the dataset
		CREATE TABLE IF NOT EXISTS category_counts (
			category TEXT PRIMARY KEY,
			count INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS subject_pivot (
			subject TEXT NOT NULL,
			category TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (subject, category)
		);

		CREATE TABLE IF NOT EXISTS author_counts (
			category TEXT NOT NULL,
			author TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (category, author)
		);

		CREATE TABLE IF NOT EXISTS category_summary (
			category TEXT PRIMARY KEY,
			papers INTEGER NOT NULL,
			unique_authors INTEGER NOT NULL,
			unique_subjects INTEGER NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}

// Rebuild clears the snapshot and repopulates it from the dataset,
// returning the number of paper rows written.
func (d *DB) Rebuild(ds []paper.Paper) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"papers", "category_counts", "subject_pivot", "author_counts", "category_summary"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return 0, fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := insertPapers(tx, ds); err != nil {
		return 0, err
	}
	if err := insertViews(tx, ds); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing snapshot: %w", err)
	}
	return len(ds), nil
}

func insertPapers(tx *sql.Tx, ds []paper.Paper) error {
	stmt, err := tx.Prepare(`
		INSERT INTO papers (
			arxiv_id, title, clean_title, category,
			authors_json, subjects_json,
			abstract_url, pdf_url, html_url, other_formats_url
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing papers insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range ds {
		authorsJSON, err := json.Marshal(p.Authors)
		if err != nil {
			return fmt.Errorf("marshaling authors for %s: %w", p.ArxivID, err)
		}
		subjectsJSON, err := json.Marshal(p.Subjects)
		if err != nil {
			return fmt.Errorf("marshaling subjects for %s: %w", p.ArxivID, err)
		}
		if _, err := stmt.Exec(
			p.ArxivID, p.Title, p.CleanTitle, p.Category,
			string(authorsJSON), string(subjectsJSON),
			p.AbstractURL, p.PDFURL, p.HTMLURL, p.OtherFormatsURL,
		); err != nil {
			return fmt.Errorf("inserting paper %s: %w", p.ArxivID, err)
		}
	}
	return nil
}

func insertViews(tx *sql.Tx, ds []paper.Paper) error {
	counts := stats.CategoryCounts(ds)
	for _, c := range counts {
		if _, err := tx.Exec(
			"INSERT INTO category_counts (category, count) VALUES (?, ?)",
			c.Category, c.Count,
		); err != nil {
			return fmt.Errorf("inserting category count for %s: %w", c.Category, err)
		}
	}

	pivot := stats.SubjectCategoryPivot(ds)
	for i, subject := range pivot.Subjects {
		for j, category := range pivot.Categories {
			if _, err := tx.Exec(
				"INSERT INTO subject_pivot (subject, category, count) VALUES (?, ?, ?)",
				subject, category, pivot.Cells[i][j],
			); err != nil {
				return fmt.Errorf("inserting pivot cell %s/%s: %w", subject, category, err)
			}
		}
	}

	for _, c := range counts {
		for _, a := range stats.AuthorFrequency(ds, c.Category, math.MaxInt) {
			if _, err := tx.Exec(
				"INSERT INTO author_counts (category, author, count) VALUES (?, ?, ?)",
				c.Category, a.Author, a.Count,
			); err != nil {
				return fmt.Errorf("inserting author count for %s: %w", c.Category, err)
			}
		}
	}

	for _, s := range stats.SummaryStatistics(ds) {
		if _, err := tx.Exec(
			"INSERT INTO category_summary (category, papers, unique_authors, unique_subjects) VALUES (?, ?, ?, ?)",
			s.Category, s.Papers, s.UniqueAuthors, s.UniqueSubjects,
		); err != nil {
			return fmt.Errorf("inserting summary for %s: %w", s.Category, err)
		}
	}

	return nil
}

// Count returns the number of paper rows in the snapshot.
func (d *DB) Count() (int, error) {
	var n int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM papers").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting papers: %w", err)
	}
	return n, nil
}

// CategoryCounts reads the category_counts view back, descending by count.
func (d *DB) CategoryCounts() ([]stats.CategoryCount, error) {
	rows, err := d.db.Query("SELECT category, count FROM category_counts ORDER BY count DESC")
	if err != nil {
		return nil, fmt.Errorf("querying category counts: %w", err)
	}
	defer rows.Close()

	var out []stats.CategoryCount
	for rows.Next() {
		var c stats.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning category count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
