package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "elements2.txt", cfg.InputFile)
	assert.Equal(t, FormatAuto, cfg.InputFormat)
	assert.Equal(t, StdoutOutput, cfg.Output)
	assert.False(t, cfg.Escape)
	assert.Equal(t, OnMalformedStop, cfg.OnMalformed)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
input_file: defs/elements.xlsx
output: out/{input}.xml
escape: true
on_malformed: skip
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "defs/elements.xlsx", cfg.InputFile)
	assert.Equal(t, FormatAuto, cfg.InputFormat)
	assert.Equal(t, "out/{input}.xml", cfg.Output)
	assert.True(t, cfg.Escape)
	assert.Equal(t, OnMalformedSkip, cfg.OnMalformed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, FormatXLSX, cfg.ResolveFormat())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad yaml", content: "input_file: [unterminated"},
		{name: "bad format", content: "input_format: json"},
		{name: "bad policy", content: "on_malformed: retry"},
		{name: "bad log level", content: "log_level: chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		input  string
		format string
		want   string
	}{
		{input: "elements2.txt", format: FormatAuto, want: FormatCSV},
		{input: "elements.csv", format: FormatAuto, want: FormatCSV},
		{input: "Elements.XLSX", format: FormatAuto, want: FormatXLSX},
		{input: "elements", format: FormatAuto, want: FormatCSV},
		{input: "elements.txt", format: FormatXLSX, want: FormatXLSX},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.InputFile = tt.input
		cfg.InputFormat = tt.format
		assert.Equal(t, tt.want, cfg.ResolveFormat(), tt.input)
	}
}
