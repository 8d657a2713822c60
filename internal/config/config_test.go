package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"use_data_dir": true,
		"output": "out/resume.pdf",
		"min_scale": 0.6,
		"max_scale": 1.1,
		"counter": "native",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.UseDataDir)
	assert.Equal(t, "out/resume.pdf", cfg.Output)
	assert.Equal(t, 0.6, cfg.MinScale)
	assert.Equal(t, 1.1, cfg.MaxScale)
	assert.Equal(t, CounterNative, cfg.Counter)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")

	var cfgErr *Error
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty config", cfg: Config{}},
		{name: "valid range", cfg: Config{MinScale: 0.5, MaxScale: 1.3, Counter: CounterPdftotext}},
		{name: "negative min", cfg: Config{MinScale: -0.1}, wantErr: "min_scale"},
		{name: "inverted range", cfg: Config{MinScale: 1.2, MaxScale: 0.8}, wantErr: "greater than"},
		{name: "unknown counter", cfg: Config{Counter: "pdfinfo"}, wantErr: "unknown counter"},
		{name: "missing data file", cfg: Config{DataFile: "/nonexistent/resume.yaml"}, wantErr: "data file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Output:   "resume.pdf",
		MinScale: 0.5,
		MaxScale: 1.3,
		Counter:  CounterPdftotext,
	}

	partial := Config{
		Output:   "custom.pdf",
		MaxScale: 1.0,
	}

	merged := partial.MergeWithDefaults(defaults)

	assert.Equal(t, "custom.pdf", merged.Output)
	assert.Equal(t, 1.0, merged.MaxScale)
	assert.Equal(t, 0.5, merged.MinScale)
	assert.Equal(t, CounterPdftotext, merged.Counter)
}

func TestDefaults_PdftotextFromEnv(t *testing.T) {
	t.Setenv(PdftotextEnv, "/opt/xpdf/bin/pdftotext")
	assert.Equal(t, "/opt/xpdf/bin/pdftotext", Defaults().PdftotextPath)

	t.Setenv(PdftotextEnv, "")
	assert.Equal(t, DefaultPdftotext, Defaults().PdftotextPath)
}

func TestDataPath(t *testing.T) {
	assert.Equal(t, DefaultDataFile, (&Config{}).DataPath())
	assert.Equal(t, DataDirFile, (&Config{UseDataDir: true}).DataPath())
	assert.Equal(t, "mine.yaml", (&Config{DataFile: "mine.yaml", UseDataDir: true}).DataPath())
}
