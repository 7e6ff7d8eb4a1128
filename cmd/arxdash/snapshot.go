package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/arxdash/internal/config"
	"github.com/mkarlsen/arxdash/internal/snapshot"
)

var (
	snapshotDBPath    string
	snapshotJSONLPath string
)

func init() {
	snapshotCmd.Flags().StringVar(&snapshotDBPath, "db", "", "SQLite snapshot path (default from config)")
	snapshotCmd.Flags().StringVar(&snapshotJSONLPath, "jsonl", "", "JSONL dataset export path (default from config)")
	rootCmd.AddCommand(snapshotCmd)
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write a rebuildable snapshot of the dataset and its views",
	Long: `Write the unified dataset and its aggregate views to a SQLite
database, and optionally the dataset to a JSONL file, for downstream
consumers that query rather than re-parse. Snapshots are rebuilt
wholesale; they are never read back by the engine itself.`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

// SnapshotResult is the response for the snapshot command.
type SnapshotResult struct {
	Rows  int    `json:"rows"`
	DB    string `json:"db,omitempty"`
	JSONL string `json:"jsonl,omitempty"`
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)

	dbPath := snapshotDBPath
	if dbPath == "" {
		dbPath = cfg.SnapshotDB
	}
	if dbPath == "" {
		dbPath = filepath.Join(config.ArxdashPath(repoRoot), "snapshot.db")
	}

	jsonlPath := snapshotJSONLPath
	if jsonlPath == "" {
		jsonlPath = cfg.SnapshotData
	}

	ds, _ := mustLoadDataset()

	db, err := snapshot.OpenDB(dbPath)
	if err != nil {
		exitWithError(ExitError, "opening snapshot: %v", err)
	}
	defer db.Close()

	rows, err := db.Rebuild(ds)
	if err != nil {
		exitWithError(ExitError, "writing snapshot: %v", err)
	}

	if jsonlPath != "" {
		if err := snapshot.WriteJSONL(jsonlPath, ds); err != nil {
			exitWithError(ExitError, "writing dataset export: %v", err)
		}
	}

	result := SnapshotResult{Rows: rows, DB: dbPath, JSONL: jsonlPath}
	if humanOutput {
		fmt.Printf("Snapshot of %d papers written to %s\n", result.Rows, result.DB)
		if result.JSONL != "" {
			fmt.Printf("Dataset exported to %s\n", result.JSONL)
		}
		return nil
	}
	return outputJSON(result)
}
