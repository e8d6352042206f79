package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", "../../config.example.yaml")

	cfg, err := ReadConfig()
	require.NoError(t, err)

	assert.Equal(t, ";", cfg.Lists.Delimiter)
	assert.Equal(t, "tmp", cfg.Lists.DataDir)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestReadConfigMissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.yaml")

	cfg, err := ReadConfig()
	require.NoError(t, err)

	// defaults apply
	assert.Equal(t, ",", cfg.Lists.Delimiter)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestReadConfigEnvOverride(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.yaml")
	t.Setenv("LISTOPS_DELIMITER", "|")
	t.Setenv("LISTOPS_LOG_LEVEL", "warn")

	cfg, err := ReadConfig()
	require.NoError(t, err)

	assert.Equal(t, "|", cfg.Lists.Delimiter)
	assert.Equal(t, "warn", cfg.Log.Level)
}
