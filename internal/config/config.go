package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds optional defaults loaded from ~/.config/awslite/config.yaml,
// with environment variable overrides applied on top.
type Config struct {
	DefaultProfile string `yaml:"default_profile" env:"AWSLITE_PROFILE"`
	DefaultRegion  string `yaml:"default_region" env:"AWSLITE_REGION"`

	// MaxAttempts caps request retries; 0 uses the transport default.
	MaxAttempts int `yaml:"max_attempts" env:"AWSLITE_MAX_ATTEMPTS"`

	// EndpointOverrides maps a service endpoint prefix (e.g.
	// "cognito-identity", "api.sagemaker") to a replacement base URL, for
	// LocalStack-style local stacks.
	EndpointOverrides map[string]string `yaml:"endpoint_overrides"`
}

// Load reads the config file and applies environment overrides. Returns a
// zero-value Config if the file doesn't exist.
func Load() (*Config, error) {
	cfg := &Config{}

	if path, ok := configPath(); ok {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// fall through to env
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

func configPath() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".config", "awslite", "config.yaml"), true
}

// Merge applies CLI flag overrides. Flags take precedence over env and
// config defaults.
func (c *Config) Merge(profile, region string) (string, string) {
	p := c.DefaultProfile
	if profile != "" {
		p = profile
	}
	r := c.DefaultRegion
	if region != "" {
		r = region
	}
	return p, r
}
