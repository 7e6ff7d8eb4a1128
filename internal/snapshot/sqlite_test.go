package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/mkarlsen/arxdash/internal/paper"
)

func testDataset() []paper.Paper {
	return []paper.Paper{
		{ArxivID: "1", Title: "Deep Nets", CleanTitle: "Deep Nets", Category: "ai",
			Authors: []string{"A", "B"}, Subjects: []string{"x", "y"}, PDFURL: "http://example.org/1.pdf"},
		{ArxivID: "2", Title: "More Nets", CleanTitle: "More Nets", Category: "ai",
			Authors: []string{"A"}, Subjects: []string{"x"}},
		{ArxivID: "3", Title: "Proteins", CleanTitle: "Proteins", Category: "bio",
			Authors: []string{"C"}, Subjects: []string{"y"}},
	}
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "snapshot.db"))
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRebuildAndCount(t *testing.T) {
	db := openTestDB(t)

	n, err := db.Rebuild(testDataset())
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Rebuild() = %d rows, want 3", n)
	}

	count, err := db.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want 3", count)
	}
}

func TestRebuild_ReplacesPreviousSnapshot(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.Rebuild(testDataset()); err != nil {
		t.Fatalf("first Rebuild() error = %v", err)
	}
	if _, err := db.Rebuild(testDataset()[:1]); err != nil {
		t.Fatalf("second Rebuild() error = %v", err)
	}

	count, err := db.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() after rebuild = %d, want 1", count)
	}
}

func TestRebuild_EmptyDataset(t *testing.T) {
	db := openTestDB(t)

	n, err := db.Rebuild(nil)
	if err != nil {
		t.Fatalf("Rebuild(nil) error = %v", err)
	}
	if n != 0 {
		t.Errorf("Rebuild(nil) = %d rows, want 0", n)
	}

	counts, err := db.CategoryCounts()
	if err != nil {
		t.Fatalf("CategoryCounts() error = %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("CategoryCounts() = %v, want empty", counts)
	}
}

func TestCategoryCountsView(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Rebuild(testDataset()); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	counts, err := db.CategoryCounts()
	if err != nil {
		t.Fatalf("CategoryCounts() error = %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("CategoryCounts() = %v, want 2 categories", counts)
	}
	if counts[0].Category != "ai" || counts[0].Count != 2 {
		t.Errorf("counts[0] = %+v, want ai/2", counts[0])
	}
	if counts[1].Category != "bio" || counts[1].Count != 1 {
		t.Errorf("counts[1] = %+v, want bio/1", counts[1])
	}
}
