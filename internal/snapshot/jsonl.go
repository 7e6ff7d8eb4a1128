package snapshot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mkarlsen/arxdash/internal/paper"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines
// (1MB per line).
const MaxJSONLLineCapacity = 1024 * 1024

// WriteJSONL writes the unified dataset to a JSONL file, replacing any
// existing content.
func WriteJSONL(path string, ds []paper.Paper) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dataset file: %w", err)
	}
	defer f.Close()

	for i, p := range ds {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encoding paper %d: %w", i, err)
		}
		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("writing paper %d: %w", i, err)
		}
		if _, err := f.WriteString("\n"); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}

	return nil
}

// ReadJSONL reads a dataset back from a JSONL file. A missing file reads
// as an empty dataset.
func ReadJSONL(path string) ([]paper.Paper, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening dataset file: %w", err)
	}
	defer f.Close()

	var ds []paper.Paper
	scanner := bufio.NewScanner(f)
	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var p paper.Paper
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		ds = append(ds, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}

	return ds, nil
}
