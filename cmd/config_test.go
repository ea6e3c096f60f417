package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "minipack", configBaseName)
	assert.Equal(t, "minipack.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "target", targetFlagName)
	assert.Equal(t, "dedupe", dedupeFlagName)
	assert.Equal(t, "max-assets", maxAssetsFlagName)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "build.target", targetConfigKey)
	assert.Equal(t, "build.dedupe", dedupeConfigKey)
	assert.Equal(t, "build.max_assets", maxAssetsConfigKey)
	assert.Equal(t, "es2015", defaultTarget)
	assert.Equal(t, false, defaultDedupe)
	assert.Equal(t, 10000, defaultMaxAssets)
	assert.Equal(t, "MINIPACK", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger_WritesToFile(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "minipack.log")

	configureLogger(logPath, true)
	slog.Debug("Extracted asset", "id", 3)

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "Extracted asset")
	assert.Contains(t, string(contents), "id=3")
	assert.Same(t, globalLogger, slog.Default())
}
