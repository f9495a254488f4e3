package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puneetrinity/evalmatch/internal/types"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"resume": "resume.json",
		"job": "job.json",
		"weights": {"skills": 0.5, "experience": 0.3, "education": 0.1, "semantic": 0.1},
		"redis_addr": "localhost:6379",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "resume.json", cfg.Resume)
	assert.Equal(t, "job.json", cfg.Job)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.True(t, cfg.Verbose)
	require.NotNil(t, cfg.Weights)
	assert.Equal(t, 0.5, cfg.Weights.Skills)
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

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		TaxonomyFile: "taxonomy.json",
		DatabaseURL:  "postgres://localhost/evalmatch",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_WeightsOutOfRange(t *testing.T) {
	cfg := &Config{
		Weights: &types.ScoringWeights{Skills: 1.5, Experience: -0.5},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid weights")
}

func TestValidate_MissingFile(t *testing.T) {
	cfg := &Config{Resume: "/nonexistent/resume.json"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestEffectiveWeights(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, types.DefaultWeights(), cfg.EffectiveWeights())

	custom := types.ScoringWeights{Skills: 1}
	cfg.Weights = &custom
	assert.Equal(t, custom, cfg.EffectiveWeights())
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Resume:    "default_resume.json",
		APIKey:    "default-key",
		RedisAddr: "localhost:6379",
		Weights:   &types.ScoringWeights{Skills: 1},
	}

	cfg := Config{Resume: "override.json"}
	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "override.json", merged.Resume)
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, "localhost:6379", merged.RedisAddr)
	require.NotNil(t, merged.Weights)
	assert.Equal(t, 1.0, merged.Weights.Skills)
}
