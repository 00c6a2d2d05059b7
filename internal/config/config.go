package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL = "https://jsonplaceholder.typicode.com"
	defaultTimeout = 10 * time.Second
	defaultUserID  = 1
)

// Duration parses YAML values like "10s" or "500ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("failed to parse duration %q: %v", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

type Config struct {
	API struct {
		BaseURL string   `yaml:"base_url"`
		Timeout Duration `yaml:"timeout"`
	} `yaml:"api"`
	Defaults struct {
		UserID int `yaml:"user_id"`
	} `yaml:"defaults"`
	Log struct {
		File string `yaml:"file"`
	} `yaml:"log"`
}

// Load reads the YAML config at path. A missing file is not an error:
// the defaults point at the public demo API and need no local setup.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %v", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaultBaseURL
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = Duration(defaultTimeout)
	}
	if cfg.Defaults.UserID == 0 {
		cfg.Defaults.UserID = defaultUserID
	}
}
