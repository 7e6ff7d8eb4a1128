// Package main provides the arxdash CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mkarlsen/arxdash/internal/cache"
	"github.com/mkarlsen/arxdash/internal/config"
	"github.com/mkarlsen/arxdash/internal/loader"
	"github.com/mkarlsen/arxdash/internal/paper"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// dataDirFlag overrides the configured data directory for one invocation
var dataDirFlag string

// loadCache memoizes the loaded dataset across commands within one process.
var loadCache = cache.New()

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arxdash",
	Short: "Aggregation engine for per-category arXiv paper data",
	Long: `arxdash ingests a directory of per-category CSV files describing
arXiv papers, normalizes multi-valued fields, and computes the aggregate
views a dashboard front end consumes: category counts, subject-by-category
pivots, author frequency rankings and per-category summaries.

All commands output JSON by default for easy integration with rendering
layers and other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data", "", "Data directory (overrides configuration)")
	rootCmd.Version = Version
}

// getRepoRoot returns the repository search root, honoring ARXDASH_ROOT.
func getRepoRoot() string {
	if root := os.Getenv("ARXDASH_ROOT"); root != "" {
		return root
	}

	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}
	return cwd
}

// mustFindRepository locates the enclosing arxdash repository or exits.
func mustFindRepository() string {
	repoRoot, err := config.FindRepository(getRepoRoot())
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return repoRoot
}

// mustLoadConfig loads the repository config or exits.
func mustLoadConfig(repoRoot string) *config.Config {
	cfg, err := config.Load(repoRoot)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// resolveDataDir picks the data directory: --data flag, then repo config,
// then global config, then the built-in default.
func resolveDataDir(repoRoot string, cfg *config.Config) string {
	if dataDirFlag != "" {
		return config.ExpandPath(dataDirFlag)
	}
	return cfg.ResolveDataDir(repoRoot)
}

// mustLoadDataset loads and normalizes the unified dataset through the
// memoizing cache. Per-file diagnostics are printed as warnings. An empty
// dataset is reported but degrades to an empty result so every aggregate
// command still emits a valid (empty) structure.
func mustLoadDataset() ([]paper.Paper, []loader.Diagnostic) {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	dir := resolveDataDir(repoRoot, cfg)

	ds, diags, err := loadCache.Load(dir)
	printDiagnostics(diags)
	if err != nil {
		if loader.IsEmptyDataset(err) {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			return []paper.Paper{}, diags
		}
		exitWithError(ExitError, "loading dataset: %v", err)
	}
	return ds, diags
}

// printDiagnostics writes per-file load warnings to stderr, keeping
// stdout clean for command output.
func printDiagnostics(diags []loader.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "warning: %s\n", d)
	}
}
