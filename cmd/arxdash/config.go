package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/arxdash/internal/config"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Get or set repository configuration",
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show repository configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a repository configuration value",
	Long: `Set a repository configuration value.

Supported keys:
  data_dir       - directory holding per-category CSV files
  top_authors    - default N for author rankings
  snapshot_db    - default SQLite snapshot path
  snapshot_data  - default JSONL dataset export path`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)

	if humanOutput {
		fmt.Printf("data_dir:      %s\n", cfg.ResolveDataDir(repoRoot))
		fmt.Printf("top_authors:   %d\n", cfg.ResolveTopAuthors())
		if cfg.SnapshotDB != "" {
			fmt.Printf("snapshot_db:   %s\n", cfg.SnapshotDB)
		}
		if cfg.SnapshotData != "" {
			fmt.Printf("snapshot_data: %s\n", cfg.SnapshotData)
		}
		return nil
	}
	return outputJSON(cfg)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)

	key, value := args[0], args[1]
	switch key {
	case "data_dir":
		if err := config.ValidateDataDir(value); err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}
		cfg.DataDir = value
	case "top_authors":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			exitWithError(ExitConfigError, "top_authors must be a positive integer, got %q", value)
		}
		cfg.TopAuthors = n
	case "snapshot_db":
		cfg.SnapshotDB = value
	case "snapshot_data":
		cfg.SnapshotData = value
	default:
		exitWithError(ExitConfigError, "unknown config key: %s", key)
	}

	if err := cfg.Save(repoRoot); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("%s = %s\n", key, value)
		return nil
	}
	return outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
}
