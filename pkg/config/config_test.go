package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
	"github.com/VeritasAI/TrustScope/pkg/pipeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  port: 8080\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 9090, cfg.Server.MetricsPort)
	assert.Equal(t, "trustscope", cfg.Database.DBName)
	assert.Equal(t, "llama3", cfg.Generator.Model)
	assert.True(t, cfg.Metrics.Enabled)

	options := cfg.PipelineOptions()
	assert.Equal(t, pipeline.DefaultOptions().WarnThreshold, options.WarnThreshold)
	assert.Equal(t, pipeline.DefaultOptions().ProceedThreshold, options.ProceedThreshold)
	assert.InDelta(t, 0.35, options.Weights[trust.CategoryEthics], 1e-9)
}

func TestLoad_OverridesThresholds(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
pipeline:
  warn_threshold: 60
  proceed_threshold: 90
`))
	require.NoError(t, err)

	options := cfg.PipelineOptions()
	assert.Equal(t, 60.0, options.WarnThreshold)
	assert.Equal(t, 90.0, options.ProceedThreshold)
}

func TestLoad_RejectsInvalidThresholds(t *testing.T) {
	_, err := Load(writeConfig(t, `
pipeline:
  warn_threshold: 95
  proceed_threshold: 85
`))
	require.Error(t, err)
	assert.True(t, pipeline.IsConfigurationError(err))
}

func TestLoad_RejectsBadWeights(t *testing.T) {
	_, err := Load(writeConfig(t, `
pipeline:
  weights:
    privacy: 0.5
    bias: 0.5
    transparency: 0.5
    ethics: 0.5
`))
	require.Error(t, err)
	assert.True(t, pipeline.IsConfigurationError(err))
}

func TestLoad_DetectorSettings(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
detectors:
  bias:
    additional_phrases:
      - "always lazy"
`))
	require.NoError(t, err)

	settings, ok := cfg.Detectors["bias"]
	require.True(t, ok)
	assert.Contains(t, settings, "additional_phrases")
}
