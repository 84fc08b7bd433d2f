package config

import (
	"fmt"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"

	mgerrors "github.com/standardbeagle/minigrep/internal/errors"
)

// Validator validates configuration and sets defaults for unset values
type Validator struct{}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults validates configuration and applies defaults.
// Every failure is a ConfigError naming the offending field.
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	v.setDefaults(cfg)

	if _, err := ParseFoldMode(cfg.Search.Fold); err != nil {
		return mgerrors.NewConfigError("search.fold", cfg.Search.Fold, mgerrors.ErrInvalidValue)
	}

	if err := v.validateSourceConfig(&cfg.Source); err != nil {
		return err
	}

	switch cfg.Output.Format {
	case FormatText, FormatJSON, FormatCount:
	default:
		return mgerrors.NewConfigError("output.format", cfg.Output.Format, mgerrors.ErrInvalidValue)
	}

	return nil
}

// validateSourceConfig validates source loading limits and exclusions
func (v *Validator) validateSourceConfig(source *Source) error {
	size := strconv.FormatInt(source.MaxFileSize, 10)
	if source.MaxFileSize <= 0 {
		return mgerrors.NewConfigError("source.max_file_size", size,
			fmt.Errorf("must be positive: %w", mgerrors.ErrInvalidValue))
	}
	if source.MaxFileSize > MaxAllowedFileSize {
		return mgerrors.NewConfigError("source.max_file_size", size,
			fmt.Errorf("should not exceed 1GB: %w", mgerrors.ErrInvalidValue))
	}

	for _, pattern := range source.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return mgerrors.NewConfigError("source.exclude", pattern, mgerrors.ErrInvalidValue)
		}
	}

	return nil
}

func (v *Validator) setDefaults(cfg *Config) {
	if cfg.Search.Fold == "" {
		cfg.Search.Fold = string(FoldLower)
	}
	if cfg.Source.MaxFileSize == 0 {
		cfg.Source.MaxFileSize = DefaultMaxFileSize
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatText
	}
}

// ValidateConfig is a convenience function for quick validation
func ValidateConfig(cfg *Config) error {
	return NewValidator().ValidateAndSetDefaults(cfg)
}
