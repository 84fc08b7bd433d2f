package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// tomlConfig mirrors the KDL layout; pointers tell "absent" from "false"
type tomlConfig struct {
	Search struct {
		CaseSensitive *bool   `toml:"case_sensitive"`
		Fold          *string `toml:"fold"`
	} `toml:"search"`
	Source struct {
		MaxFileSize interface{} `toml:"max_file_size"` // 10485760 or "10MB"
		Exclude     []string    `toml:"exclude"`
	} `toml:"source"`
	Output struct {
		Format      *string `toml:"format"`
		LineNumbers *bool   `toml:"line_numbers"`
		Header      *bool   `toml:"header"`
	} `toml:"output"`
}

// applyTOML parses a .minigrep.toml document onto cfg with the same merge
// rules as applyKDL
func applyTOML(cfg *Config, content []byte) error {
	var tc tomlConfig
	if err := toml.Unmarshal(content, &tc); err != nil {
		return fmt.Errorf("failed to parse TOML config: %w", err)
	}

	if tc.Search.CaseSensitive != nil {
		v := *tc.Search.CaseSensitive
		cfg.Search.CaseSensitive = &v
	}
	if tc.Search.Fold != nil {
		cfg.Search.Fold = *tc.Search.Fold
	}

	switch v := tc.Source.MaxFileSize.(type) {
	case nil:
	case int64:
		cfg.Source.MaxFileSize = v
	case string:
		sz, err := parseSize(v)
		if err != nil {
			return fmt.Errorf("invalid source.max_file_size %q: %w", v, err)
		}
		cfg.Source.MaxFileSize = sz
	default:
		return fmt.Errorf("invalid source.max_file_size: expected integer or size string, got %T", v)
	}
	cfg.Source.Exclude = append(cfg.Source.Exclude, tc.Source.Exclude...)

	if tc.Output.Format != nil {
		cfg.Output.Format = *tc.Output.Format
	}
	if tc.Output.LineNumbers != nil {
		cfg.Output.LineNumbers = *tc.Output.LineNumbers
	}
	if tc.Output.Header != nil {
		cfg.Output.Header = *tc.Output.Header
	}

	return nil
}
