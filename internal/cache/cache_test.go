package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mkarlsen/arxdash/internal/loader"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestCache_MemoizesUnchangedDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ai.csv", "arxiv_id,title,authors,subjects\n1,T,A,x\n")

	c := New()
	ds1, _, err := c.Load(dir)
	if err != nil {
		t.Fatalf("first Load() error = %v", err)
	}
	ds2, _, err := c.Load(dir)
	if err != nil {
		t.Fatalf("second Load() error = %v", err)
	}

	if len(ds1) != 1 || len(ds2) != 1 {
		t.Fatalf("datasets = %d, %d rows, want 1 each", len(ds1), len(ds2))
	}
	// A memo hit returns the same backing array, not a re-parsed copy.
	if &ds1[0] != &ds2[0] {
		t.Error("second Load() re-read the directory despite unchanged contents")
	}
}

func TestCache_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ai.csv")
	writeFile(t, dir, "ai.csv", "arxiv_id,title,authors,subjects\n1,T,A,x\n")

	c := New()
	ds1, _, err := c.Load(dir)
	if err != nil {
		t.Fatalf("first Load() error = %v", err)
	}
	if len(ds1) != 1 {
		t.Fatalf("first Load() = %d rows, want 1", len(ds1))
	}

	writeFile(t, dir, "ai.csv", "arxiv_id,title,authors,subjects\n1,T,A,x\n2,U,B,y\n")
	// Force a distinct mtime in case the filesystem's resolution is coarse.
	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("touching file: %v", err)
	}

	ds2, _, err := c.Load(dir)
	if err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if len(ds2) != 2 {
		t.Errorf("second Load() = %d rows, want 2 after change", len(ds2))
	}
}

func TestCache_Invalidate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ai.csv", "arxiv_id,title,authors,subjects\n1,T,A,x\n")

	c := New()
	ds1, _, err := c.Load(dir)
	if err != nil {
		t.Fatalf("first Load() error = %v", err)
	}

	c.Invalidate()

	ds2, _, err := c.Load(dir)
	if err != nil {
		t.Fatalf("Load() after Invalidate error = %v", err)
	}
	if len(ds2) != len(ds1) {
		t.Fatalf("Load() after Invalidate = %d rows, want %d", len(ds2), len(ds1))
	}
	if &ds1[0] == &ds2[0] {
		t.Error("Load() after Invalidate returned the memoized dataset")
	}
}

func TestCache_EmptyDirectoryError(t *testing.T) {
	c := New()
	_, _, err := c.Load(t.TempDir())
	if !loader.IsEmptyDataset(err) {
		t.Fatalf("Load() error = %v, want EmptyDatasetError", err)
	}

	// The failed cycle must not be memoized as a success.
	_, _, err = c.Load(t.TempDir())
	if !loader.IsEmptyDataset(err) {
		t.Fatalf("second Load() error = %v, want EmptyDatasetError", err)
	}
}

func TestCache_ReplaysDiagnosticsOnHit(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.csv", "arxiv_id,title,authors,subjects\n\"unterminated\n")
	writeFile(t, dir, "good.csv", "arxiv_id,title,authors,subjects\n1,T,A,x\n")

	c := New()
	_, diags1, err := c.Load(dir)
	if err != nil {
		t.Fatalf("first Load() error = %v", err)
	}
	_, diags2, err := c.Load(dir)
	if err != nil {
		t.Fatalf("second Load() error = %v", err)
	}

	if len(diags1) != 1 || len(diags2) != 1 {
		t.Errorf("diagnostics = %d, %d, want 1 on both loads", len(diags1), len(diags2))
	}
	if diags2[0].File != "bad.csv" {
		t.Errorf("replayed diagnostic = %+v, want bad.csv", diags2[0])
	}
}

func TestFingerprint(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ai.csv", "a")

	fp1, err := Fingerprint(dir)
	if err != nil {
		t.Fatalf("Fingerprint() error = %v", err)
	}

	writeFile(t, dir, "bio.csv", "b")
	fp2, err := Fingerprint(dir)
	if err != nil {
		t.Fatalf("Fingerprint() error = %v", err)
	}
	if fp1 == fp2 {
		t.Error("fingerprint unchanged after adding a file")
	}

	missing, err := Fingerprint(filepath.Join(dir, "nope"))
	if err != nil {
		t.Fatalf("Fingerprint(missing) error = %v", err)
	}
	if missing == "" {
		t.Error("Fingerprint(missing) = empty string, want empty-contents hash")
	}
}
