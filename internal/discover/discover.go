// Package discover enumerates category source files in a data directory.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DataExt is the recognized extension for category source files.
const DataExt = ".csv"

// Categories returns the category identifiers derived from the base names
// of the CSV files in dir, in directory order. A missing directory or a
// directory without CSV files yields an empty slice and no error; callers
// must treat that case as "nothing configured", not as a failure.
func Categories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("reading data directory: %w", err)
	}

	cats := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != DataExt {
			continue
		}
		cats = append(cats, strings.TrimSuffix(name, DataExt))
	}

	return cats, nil
}

// FilePath returns the source file path for a category within dir.
func FilePath(dir, category string) string {
	return filepath.Join(dir, category+DataExt)
}
