package loader

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestLoadDir_TwoCategories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ai.csv", "arxiv_id,title,authors,subjects\n2401.0001,First,A;B,\"x,y\"\n")
	writeFile(t, dir, "bio.csv", "arxiv_id,title,authors,subjects\n2401.0002,Second,C,z\n")

	rows, diags, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("LoadDir() diagnostics = %v, want none", diags)
	}
	if len(rows) != 2 {
		t.Fatalf("LoadDir() returned %d rows, want 2", len(rows))
	}

	// Category order preserved from discovery
	if rows[0].Category != "ai" || rows[1].Category != "bio" {
		t.Errorf("categories = %s, %s, want ai, bio", rows[0].Category, rows[1].Category)
	}
	if rows[0].ArxivID.Value != "2401.0001" {
		t.Errorf("ArxivID = %v, want 2401.0001", rows[0].ArxivID.Value)
	}
	if rows[0].Authors.Value != "A;B" || !rows[0].Authors.Present {
		t.Errorf("Authors = %+v, want present A;B", rows[0].Authors)
	}
	if rows[0].Subjects.Value != "x,y" {
		t.Errorf("Subjects = %v, want x,y", rows[0].Subjects.Value)
	}
}

func TestLoadDir_CorruptFileIsolated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.csv", "arxiv_id,title,authors,subjects\n\"unterminated\n")
	writeFile(t, dir, "good.csv", "arxiv_id,title,authors,subjects\n2401.0003,Fine,D,w\n")

	rows, diags, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v, want nil when one file is valid", err)
	}
	if len(diags) != 1 {
		t.Fatalf("LoadDir() diagnostics = %v, want 1", diags)
	}
	if diags[0].File != "bad.csv" {
		t.Errorf("diagnostic file = %s, want bad.csv", diags[0].File)
	}
	if len(rows) != 1 || rows[0].Category != "good" {
		t.Errorf("rows = %+v, want only good.csv's row", rows)
	}
}

func TestLoadDir_EmptyDirectory(t *testing.T) {
	_, diags, err := LoadDir(t.TempDir())
	if !IsEmptyDataset(err) {
		t.Fatalf("LoadDir() error = %v, want EmptyDatasetError", err)
	}
	var e *EmptyDatasetError
	if !errors.As(err, &e) || e.FilesAttempted != 0 {
		t.Errorf("FilesAttempted = %+v, want 0", e)
	}
	if len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", diags)
	}
}

func TestLoadDir_AllFilesFail(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.csv", "arxiv_id,title\nmissing,columns\n")
	writeFile(t, dir, "two.csv", "")

	_, diags, err := LoadDir(dir)
	if !IsEmptyDataset(err) {
		t.Fatalf("LoadDir() error = %v, want EmptyDatasetError", err)
	}
	var e *EmptyDatasetError
	if !errors.As(err, &e) || e.FilesAttempted != 2 {
		t.Errorf("FilesAttempted = %+v, want 2", e)
	}
	if len(diags) != 2 {
		t.Errorf("diagnostics = %v, want 2", diags)
	}
}

func TestLoadFile_MissingRequiredColumn(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ai.csv", "arxiv_id,title,authors\n1,T,A\n")

	_, err := loadFile(filepath.Join(dir, "ai.csv"), "ai")
	if err == nil {
		t.Fatal("loadFile() error = nil, want missing column error")
	}
}

func TestLoadFile_OptionalColumnsAndShortRows(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ai.csv",
		"arxiv_id,title,authors,subjects,pdf_url\n"+
			"1,T,A,x,http://example.org/pdf\n"+
			"2,U,B,y\n")

	rows, err := loadFile(filepath.Join(dir, "ai.csv"), "ai")
	if err != nil {
		t.Fatalf("loadFile() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("loadFile() returned %d rows, want 2", len(rows))
	}

	if !rows[0].PDFURL.Present || rows[0].PDFURL.Value != "http://example.org/pdf" {
		t.Errorf("row 0 PDFURL = %+v, want present URL", rows[0].PDFURL)
	}
	// Short row: pdf_url cell absent, not empty-present
	if rows[1].PDFURL.Present {
		t.Errorf("row 1 PDFURL = %+v, want absent", rows[1].PDFURL)
	}
	// abstract_url column missing entirely: absent on every row
	if rows[0].AbstractURL.Present {
		t.Errorf("row 0 AbstractURL = %+v, want absent", rows[0].AbstractURL)
	}
}

func TestLoad_RowOrderPreserved(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ai.csv",
		"arxiv_id,title,authors,subjects\n1,T1,A,x\n2,T2,B,y\n3,T3,C,z\n")

	rows, _, err := Load(dir, []string{"ai"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var ids []string
	for _, r := range rows {
		ids = append(ids, r.ArxivID.Value)
	}
	if !reflect.DeepEqual(ids, []string{"1", "2", "3"}) {
		t.Errorf("row order = %v, want 1,2,3", ids)
	}
}
