// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds opusbuild configuration
type Config struct {
	OutputRoot string `yaml:"output_root"` // Build output root directory
	Target     string `yaml:"target"`      // Target triple (defaults to host)
	Host       string `yaml:"host"`        // Host triple (auto-detected if empty)
	Linker     string `yaml:"linker"`      // Cross linker path, required when target != host
	GitURL     string `yaml:"git_url"`     // Upstream source location, git or release tarball
	Generator  string `yaml:"generator"`   // Binding generator executable
	Jobs       int    `yaml:"jobs"`        // Compile parallelism (0 = logical CPU count)
	Debug      bool   `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		OutputRoot: "build",
		GitURL:     DefaultGitURL,
		Generator:  DefaultGenerator,
	}
	cfg.applyEnv()
	return cfg
}

// LoadConfig loads configuration from file. Environment overrides always win
// over file values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "opusbuild", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := &Config{
		OutputRoot: "build",
		GitURL:     DefaultGitURL,
		Generator:  DefaultGenerator,
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyEnv()

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "opusbuild", "config.yaml")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OPUSBUILD_OUT_DIR"); v != "" {
		c.OutputRoot = v
	}
	if v := os.Getenv("OPUSBUILD_TARGET"); v != "" {
		c.Target = v
	}
	if v := os.Getenv("OPUSBUILD_HOST"); v != "" {
		c.Host = v
	}
	if v := os.Getenv("OPUSBUILD_LINKER"); v != "" {
		c.Linker = v
	}
	if v := os.Getenv("OPUS_GIT_URL"); v != "" {
		c.GitURL = v
	}
	if v := os.Getenv("OPUSBUILD_GENERATOR"); v != "" {
		c.Generator = v
	}
}
