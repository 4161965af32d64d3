package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a patchgen.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates patchgen.yaml content.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save validates and writes a config file to disk.
func Save(path string, cfg *Config) error {
	if err := validate(cfg); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // config file needs to be readable
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", cfg.Version)
	}
	if len(cfg.Patches) == 0 {
		return fmt.Errorf("config: at least one patch target is required")
	}

	seen := make(map[string]bool, len(cfg.Patches))
	for i, p := range cfg.Patches {
		if p.Upstream == "" {
			return fmt.Errorf("config: patches[%d].upstream is required", i)
		}
		if p.Source == "" {
			return fmt.Errorf("config: patches[%d] (%s).source is required", i, p.Upstream)
		}
		if seen[p.Upstream] {
			return fmt.Errorf("config: duplicate upstream %q", p.Upstream)
		}
		seen[p.Upstream] = true
	}
	return nil
}
