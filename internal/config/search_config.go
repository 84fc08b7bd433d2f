package config

import (
	"fmt"

	mgerrors "github.com/standardbeagle/minigrep/internal/errors"
)

// FoldMode selects how text is case folded for case-insensitive search
type FoldMode string

const (
	// FoldLower lower-cases query and line with simple Unicode mappings
	FoldLower FoldMode = "lower"
	// FoldUnicode applies full Unicode case folding (e.g. "ß" folds to "ss")
	FoldUnicode FoldMode = "unicode"
)

// ParseFoldMode converts a config or flag value into a FoldMode
func ParseFoldMode(s string) (FoldMode, error) {
	switch FoldMode(s) {
	case "", FoldLower:
		return FoldLower, nil
	case FoldUnicode:
		return FoldUnicode, nil
	default:
		return "", fmt.Errorf("unknown fold mode %q (want %q or %q)", s, FoldLower, FoldUnicode)
	}
}

// SearchConfig is the immutable description of one search run.
// Build it with NewSearchConfig; the zero value is not valid.
type SearchConfig struct {
	query         string
	source        string
	caseSensitive bool
	folding       FoldMode
}

// Option customizes a SearchConfig at construction time
type Option func(*SearchConfig)

// WithFolding selects the case folding used when the search ignores case
func WithFolding(mode FoldMode) Option {
	return func(c *SearchConfig) {
		c.folding = mode
	}
}

// NewSearchConfig validates and builds a SearchConfig.
// The query may be empty, which matches every line.
func NewSearchConfig(query, source string, caseSensitive bool, opts ...Option) (SearchConfig, error) {
	cfg := SearchConfig{
		query:         query,
		source:        source,
		caseSensitive: caseSensitive,
		folding:       FoldLower,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.source == "" {
		return SearchConfig{}, mgerrors.MissingArgument("source", "didn't get a file name")
	}
	if _, err := ParseFoldMode(string(cfg.folding)); err != nil {
		return SearchConfig{}, mgerrors.NewConfigError("search.fold", string(cfg.folding), mgerrors.ErrInvalidValue)
	}

	return cfg, nil
}

// Query returns the search string
func (c SearchConfig) Query() string { return c.query }

// Source returns the opaque source identifier (a path, or "-" for stdin)
func (c SearchConfig) Source() string { return c.source }

// CaseSensitive reports whether matching is byte exact
func (c SearchConfig) CaseSensitive() bool { return c.caseSensitive }

// Folding returns the fold mode used when CaseSensitive is false
func (c SearchConfig) Folding() FoldMode { return c.folding }

// String implements fmt.Stringer for debug logging
func (c SearchConfig) String() string {
	return fmt.Sprintf("query=%q source=%q case_sensitive=%t fold=%s", c.query, c.source, c.caseSensitive, c.folding)
}
