package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig holds defaults for metsgen flags. Command-line flags
// override every value set here.
type ProjectConfig struct {
	RepoURL         string `yaml:"repo_url"`
	OutputDir       string `yaml:"output_dir,omitempty"`
	NamingAuthority string `yaml:"naming_authority,omitempty"`
	Strict          bool   `yaml:"strict,omitempty"`
	CacheModels     bool   `yaml:"cache_models,omitempty"`
	Retries         int    `yaml:"retries,omitempty"`
	Timeout         string `yaml:"timeout,omitempty"`
	Username        string `yaml:"username,omitempty"`
}

const ConfigFileName = "metsgen.yaml"

// Load reads metsgen.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file at an explicit path.
func LoadFile(configPath string) (*ProjectConfig, error) {
	// #nosec G304 -- path is the operator's --config flag or the working directory.
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// TimeoutDuration parses Timeout. An empty value returns zero.
func (c *ProjectConfig) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}
