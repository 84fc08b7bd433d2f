package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyKDL_Empty(t *testing.T) {
	cfg := Default()
	require.NoError(t, applyKDL(cfg, ""))
	assert.Equal(t, Default(), cfg)
}

func TestApplyKDL_AllSections(t *testing.T) {
	kdlContent := `
search {
    case_sensitive true
    fold "unicode"
}
source {
    max_file_size "10MB"
    exclude "**/*.png" "**/*.jpg"
}
output {
    format "json"
    line_numbers true
    header false
}
`
	cfg := Default()
	require.NoError(t, applyKDL(cfg, kdlContent))

	require.NotNil(t, cfg.Search.CaseSensitive)
	assert.True(t, *cfg.Search.CaseSensitive)
	assert.Equal(t, "unicode", cfg.Search.Fold)
	assert.Equal(t, int64(10*1024*1024), cfg.Source.MaxFileSize)
	assert.Equal(t, []string{"**/*.png", "**/*.jpg"}, cfg.Source.Exclude)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.True(t, cfg.Output.LineNumbers)
	assert.False(t, cfg.Output.Header)
}

func TestApplyKDL_IntegerSize(t *testing.T) {
	cfg := Default()
	require.NoError(t, applyKDL(cfg, `
source {
    max_file_size 4096
}
`))
	assert.Equal(t, int64(4096), cfg.Source.MaxFileSize)
}

func TestApplyKDL_BlockExclude(t *testing.T) {
	kdlContent := `
source {
    exclude {
        "**/*.bin"
        "**/secrets/**"
    }
}
`
	cfg := Default()
	require.NoError(t, applyKDL(cfg, kdlContent))
	assert.Equal(t, []string{"**/*.bin", "**/secrets/**"}, cfg.Source.Exclude)
}

func TestApplyKDL_UnknownKeysIgnored(t *testing.T) {
	kdlContent := `
search {
    regex true
}
colors {
    enabled true
}
`
	cfg := Default()
	require.NoError(t, applyKDL(cfg, kdlContent))
	assert.Equal(t, Default(), cfg)
}

func TestApplyKDL_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `search {`},
		{"bad size", `
source {
    max_file_size "tenMB"
}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, applyKDL(Default(), tt.content))
		})
	}
}

func TestApplyTOML(t *testing.T) {
	content := `
[search]
case_sensitive = true
fold = "unicode"

[source]
max_file_size = "2KB"
exclude = ["**/*.png"]

[output]
format = "count"
line_numbers = true
header = false
`
	cfg := Default()
	require.NoError(t, applyTOML(cfg, []byte(content)))

	require.NotNil(t, cfg.Search.CaseSensitive)
	assert.True(t, *cfg.Search.CaseSensitive)
	assert.Equal(t, "unicode", cfg.Search.Fold)
	assert.Equal(t, int64(2048), cfg.Source.MaxFileSize)
	assert.Equal(t, []string{"**/*.png"}, cfg.Source.Exclude)
	assert.Equal(t, FormatCount, cfg.Output.Format)
	assert.True(t, cfg.Output.LineNumbers)
	assert.False(t, cfg.Output.Header)
}

func TestApplyTOML_IntegerSizeAndErrors(t *testing.T) {
	cfg := Default()
	require.NoError(t, applyTOML(cfg, []byte("[source]\nmax_file_size = 1024\n")))
	assert.Equal(t, int64(1024), cfg.Source.MaxFileSize)

	assert.Error(t, applyTOML(Default(), []byte("[source]\nmax_file_size = 1.5\n")))
	assert.Error(t, applyTOML(Default(), []byte("[source]\nmax_file_size = \"lots\"\n")))
	assert.Error(t, applyTOML(Default(), []byte("[search\n")))
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"10", 10},
		{"10B", 10},
		{"1KB", 1024},
		{"3mb", 3 * 1024 * 1024},
		{" 1GB ", 1024 * 1024 * 1024},
	}
	for _, tt := range tests {
		got, err := parseSize(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseSize("big")
	assert.Error(t, err)
}
