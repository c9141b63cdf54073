package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, StrategyReplace, cfg.AnonymizationStrategy)
	assert.Equal(t, "_redacted", cfg.OutputSuffix)
	assert.Equal(t, 0.20, cfg.ConfidenceThreshold)
	assert.Contains(t, cfg.EnabledEntities, "PERSON")
	assert.Contains(t, cfg.EnabledEntities, "MEDICAL_RECORD_NUMBER")
	assert.Contains(t, cfg.ColumnRedactionHints, "email")
	assert.True(t, cfg.CustomRecognizers.Enabled)
	assert.NoError(t, cfg.Validate())
}

// A missing config file is not an error; the engine runs on defaults.
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// Keys present in the file override defaults; omitted keys keep them.
func TestLoadConfigPartialOverride(t *testing.T) {
	path := writeConfigFile(t, `
anonymization_strategy: hash
confidence_threshold: 0.5
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, StrategyHash, cfg.AnonymizationStrategy)
	assert.Equal(t, 0.5, cfg.ConfidenceThreshold)
	assert.Equal(t, DefaultConfig().EnabledEntities, cfg.EnabledEntities)
	assert.Equal(t, DefaultConfig().OutputSuffix, cfg.OutputSuffix)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfigFile(t, "enabled_entities: [unterminated")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.True(t, IsCategory(err, CategoryConfig))
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty entities", func(c *Config) { c.EnabledEntities = nil }},
		{"unknown strategy", func(c *Config) { c.AnonymizationStrategy = "scramble" }},
		{"threshold too high", func(c *Config) { c.ConfidenceThreshold = 1.5 }},
		{"threshold negative", func(c *Config) { c.ConfidenceThreshold = -0.1 }},
		{"bad mrn regex", func(c *Config) { c.CustomRecognizers.MRNPattern = "(" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, IsCategory(err, CategoryConfig))
		})
	}
}

func TestLoadConfigInvalidValues(t *testing.T) {
	path := writeConfigFile(t, "confidence_threshold: 2.0\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.True(t, IsCategory(err, CategoryConfig))
}
