package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-compiler/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleRange(t *testing.T) {
	low, high, err := scaleRange([]float64{0.6, 1.2}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.6, low)
	assert.Equal(t, 1.2, high)

	_, _, err = scaleRange([]float64{0.6}, nil)
	var cfgErr *config.Error
	assert.ErrorAs(t, err, &cfgErr)
}

func TestScaleRange_PositionalHigh(t *testing.T) {
	low, high, err := scaleRange([]float64{0.5}, []string{"1.3"})
	require.NoError(t, err)
	assert.Equal(t, 0.5, low)
	assert.Equal(t, 1.3, high)

	tests := []struct {
		name  string
		sizes []float64
		args  []string
	}{
		{name: "not a number", sizes: []float64{0.5}, args: []string{"big"}},
		{name: "flag already has both", sizes: []float64{0.5, 1.3}, args: []string{"1.2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := scaleRange(tt.sizes, tt.args)
			var cfgErr *config.Error
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestFitCommand_SizeFlagParsing(t *testing.T) {
	cmd := &cobra.Command{Use: "fit", Args: cobra.MaximumNArgs(1)}
	var sizes []float64
	cmd.Flags().Float64SliceVarP(&sizes, "size", "s", []float64{0.5, 1.3}, "")
	require.NoError(t, cmd.ParseFlags([]string{"--size", "0.6", "1.1"}))
	require.NoError(t, cmd.ValidateArgs(cmd.Flags().Args()))

	low, high, err := scaleRange(sizes, cmd.Flags().Args())
	require.NoError(t, err)
	assert.Equal(t, 0.6, low)
	assert.Equal(t, 1.1, high)
}

func TestDocumentFlags_Apply(t *testing.T) {
	var flags documentFlags
	cmd := &cobra.Command{Use: "test"}
	flags.register(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--data", "--out", "build/cv.pdf"}))

	cfg := config.Defaults()
	flags.apply(cmd, &cfg)

	assert.True(t, cfg.UseDataDir)
	assert.Equal(t, config.DataDirFile, cfg.DataPath())
	assert.Equal(t, "build/cv.pdf", cfg.Output)
	assert.Equal(t, config.DefaultQRImage, cfg.QRImage)
}

func TestDocumentFlags_InOverridesData(t *testing.T) {
	var flags documentFlags
	cmd := &cobra.Command{Use: "test"}
	flags.register(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--data", "--in", "other.yaml"}))

	cfg := config.Defaults()
	flags.apply(cmd, &cfg)
	assert.Equal(t, "other.yaml", cfg.DataPath())
}

func TestLoadSettings_ConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output": "out/cv.pdf", "min_scale": 0.7, "log_level": "warn"}`), 0644))

	rootConfigFile, rootLogLevel = path, "debug"
	t.Cleanup(func() { rootConfigFile, rootLogLevel = "", "" })

	cfg, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "out/cv.pdf", cfg.Output)
	assert.Equal(t, 0.7, cfg.MinScale)
	assert.Equal(t, config.DefaultMaxScale, cfg.MaxScale)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadSettings_InvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"min_scale": 1.5, "max_scale": 0.5}`), 0644))

	rootConfigFile = path
	t.Cleanup(func() { rootConfigFile = "" })

	_, err := loadSettings()
	var cfgErr *config.Error
	assert.ErrorAs(t, err, &cfgErr)
}
