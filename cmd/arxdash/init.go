package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/arxdash/internal/config"
)

var initDataDir string

func init() {
	initCmd.Flags().StringVar(&initDataDir, "data-dir", "", "Data directory to record in the new config")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize an arxdash repository in the current directory",
	Long: `Initialize an arxdash repository in the current directory.

Creates a .arxdash directory with a default config.json. The data
directory defaults to ./data and can be changed later with
'arxdash config set data_dir <path>'.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root := getRepoRoot()

	if config.IsRepository(root) {
		exitWithError(ExitConfigError, "already an arxdash repository: %s", root)
	}

	if err := config.ValidateDataDir(initDataDir); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if err := os.MkdirAll(config.ArxdashPath(root), 0755); err != nil {
		exitWithError(ExitError, "creating .arxdash directory: %v", err)
	}

	cfg := &config.Config{DataDir: initDataDir}
	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "writing config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized arxdash repository in %s\n", config.ArxdashPath(root))
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: config.ArxdashPath(root)})
	}
	return nil
}
