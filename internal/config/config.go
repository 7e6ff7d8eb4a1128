// Package config handles repository and global configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents repository configuration stored in .arxdash/config.json.
type Config struct {
	DataDir      string `json:"data_dir"`                // Directory holding per-category CSV files
	TopAuthors   int    `json:"top_authors,omitempty"`   // Default N for author frequency rankings
	SnapshotDB   string `json:"snapshot_db,omitempty"`   // Default SQLite snapshot path
	SnapshotData string `json:"snapshot_data,omitempty"` // Default JSONL dataset export path
}

const (
	ArxdashDir = ".arxdash"
	ConfigFile = "config.json"

	// DefaultDataDir is used when no configuration names a data directory.
	DefaultDataDir = "data"
	// DefaultTopAuthors is the default N for author frequency rankings.
	DefaultTopAuthors = 10
)

// ArxdashPath returns the path to the .arxdash directory from a root path.
func ArxdashPath(root string) string {
	return filepath.Join(root, ArxdashDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, ArxdashDir, ConfigFile)
}

// IsRepository checks if the given path contains an arxdash repository.
func IsRepository(root string) bool {
	info, err := os.Stat(ArxdashPath(root))
	return err == nil && info.IsDir()
}

// FindRepository walks up from the given path to find an arxdash repository.
// Returns the repository root path or an error if not found.
func FindRepository(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsRepository(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in an arxdash repository (no .arxdash directory found)")
		}
		abs = parent
	}
}

// Load reads configuration from the repository at the given root.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the repository at the given root.
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ResolveDataDir returns the data directory for a repository, applying
// global-config and built-in fallbacks. A relative configured value is
// rooted at the repository.
func (c *Config) ResolveDataDir(root string) string {
	dir := c.DataDir
	if dir == "" {
		if g, err := LoadGlobalConfig(); err == nil && g.DataDir != "" {
			dir = g.DataDir
		}
	}
	if dir == "" {
		dir = DefaultDataDir
	}

	dir = ExpandPath(dir)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return dir
}

// ResolveTopAuthors returns the configured author-ranking size or the
// built-in default.
func (c *Config) ResolveTopAuthors() int {
	if c.TopAuthors > 0 {
		return c.TopAuthors
	}
	return DefaultTopAuthors
}

// ValidateDataDir checks that a configured data directory exists and is a
// directory. An empty value is allowed (not yet configured).
func ValidateDataDir(path string) error {
	if path == "" {
		return nil
	}

	expandedPath := ExpandPath(path)

	info, err := os.Stat(expandedPath)
	if err != nil {
		return fmt.Errorf("path does not exist: %s", expandedPath)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", expandedPath)
	}

	return nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
