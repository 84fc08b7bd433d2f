package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/standardbeagle/minigrep/internal/debug"
	mgerrors "github.com/standardbeagle/minigrep/internal/errors"
)

// Config file names, looked up in this order in every directory
const (
	KDLFileName  = ".minigrep.kdl"
	TOMLFileName = ".minigrep.toml"
)

// Output formats
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatCount = "count"
)

const (
	DefaultMaxFileSize int64 = 256 * 1024 * 1024
	MaxAllowedFileSize int64 = 1024 * 1024 * 1024
)

// Config holds the project level defaults read from .minigrep.kdl or
// .minigrep.toml. Command line flags and the environment override it.
type Config struct {
	Search Search
	Source Source
	Output Output
	Path   string // file the config was read from, empty for defaults
}

type Search struct {
	CaseSensitive *bool  // nil leaves the decision to the environment and the default
	Fold          string // "lower" or "unicode"
}

type Source struct {
	MaxFileSize int64    // bytes; larger sources are refused before reading
	Exclude     []string // doublestar patterns; matching sources are refused
}

type Output struct {
	Format      string // text, json or count
	LineNumbers bool   // prefix text matches with "<n>:"
	Header      bool   // print the "Searching for ..." banner
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Search: Search{
			Fold: string(FoldLower),
		},
		Source: Source{
			MaxFileSize: DefaultMaxFileSize,
			Exclude:     []string{},
		},
		Output: Output{
			Format: FormatText,
			Header: true,
		},
	}
}

// Load reads the global config from the home directory, then the project
// config from dir on top of it. Missing files are not an error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != dir {
		if _, err := loadDir(cfg, homeDir); err != nil {
			return nil, err
		}
	}

	if dir == "" {
		dir = "."
	}
	if _, err := loadDir(cfg, dir); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads defaults plus exactly one explicit config file
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := applyFile(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDir applies the first config file found in dir onto cfg
func loadDir(cfg *Config, dir string) (bool, error) {
	for _, name := range []string{KDLFileName, TOMLFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		if err := applyFile(cfg, path); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func applyFile(cfg *Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return mgerrors.NewConfigError("config", path, fmt.Errorf("failed to read config: %w", err))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = applyTOML(cfg, content)
	default:
		err = applyKDL(cfg, string(content))
	}
	if err != nil {
		return mgerrors.NewConfigError("config", path, err)
	}

	cfg.Path = path
	cfg.Source.Exclude = DeduplicatePatterns(cfg.Source.Exclude)
	debug.LogConfig("loaded %s\n", path)
	return nil
}

// DeduplicatePatterns removes repeated patterns, keeping first occurrence order
func DeduplicatePatterns(patterns []string) []string {
	seen := make(map[string]bool, len(patterns))
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
