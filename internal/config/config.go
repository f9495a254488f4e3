// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/puneetrinity/evalmatch/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Resume string `json:"resume,omitempty"` // Path to resume JSON file
	Job    string `json:"job,omitempty"`    // Path to job JSON file

	// Scoring
	Weights *types.ScoringWeights `json:"weights,omitempty"` // Dimension weights; defaults used when omitted

	// Taxonomy source
	TaxonomyFile string `json:"taxonomy_file,omitempty"` // Path to skill taxonomy JSON file
	DatabaseURL  string `json:"database_url,omitempty"`  // PostgreSQL connection URL for the taxonomy

	// External services
	APIKey    string `json:"api_key,omitempty"`    // Gemini API key
	Model     string `json:"model,omitempty"`      // Embedding model override
	RedisAddr string `json:"redis_addr,omitempty"` // Redis address for the embedding cache

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.TaxonomyFile != "" && c.DatabaseURL != "" {
		return fmt.Errorf("config error: 'taxonomy_file' and 'database_url' are mutually exclusive")
	}

	if c.Weights != nil {
		if err := validator.New().Struct(c.Weights); err != nil {
			return fmt.Errorf("config error: invalid weights: %w", err)
		}
	}

	// Validate file paths exist (if specified)
	for name, path := range map[string]string{
		"resume":        c.Resume,
		"job":           c.Job,
		"taxonomy_file": c.TaxonomyFile,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// EffectiveWeights returns the configured weights, or the standard weighting
// when none are set.
func (c *Config) EffectiveWeights() types.ScoringWeights {
	if c.Weights != nil {
		return *c.Weights
	}
	return types.DefaultWeights()
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.TaxonomyFile == "" {
		result.TaxonomyFile = defaults.TaxonomyFile
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}

	if result.Weights == nil {
		result.Weights = defaults.Weights
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
