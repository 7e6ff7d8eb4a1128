package discover

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCategories(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"ai.csv", "bio.csv", "notes.txt", "README.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.csv"), 0755); err != nil {
		t.Fatalf("creating directory: %v", err)
	}

	cats, err := Categories(dir)
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	want := []string{"ai", "bio"}
	if !reflect.DeepEqual(cats, want) {
		t.Errorf("Categories() = %v, want %v", cats, want)
	}
}

func TestCategories_MissingDirectory(t *testing.T) {
	cats, err := Categories(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("Categories() error = %v, want nil for missing directory", err)
	}
	if len(cats) != 0 {
		t.Errorf("Categories() = %v, want empty", cats)
	}
	if cats == nil {
		t.Error("Categories() returned nil, want empty slice")
	}
}

func TestCategories_EmptyDirectory(t *testing.T) {
	cats, err := Categories(t.TempDir())
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	if len(cats) != 0 {
		t.Errorf("Categories() = %v, want empty", cats)
	}
}

func TestFilePath(t *testing.T) {
	got := FilePath("/data", "ai")
	want := filepath.Join("/data", "ai.csv")
	if got != want {
		t.Errorf("FilePath() = %v, want %v", got, want)
	}
}
