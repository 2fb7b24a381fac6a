package bot

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/m3rciful/skishopbot/core/config"
	coredatabase "github.com/m3rciful/skishopbot/core/database"
	"github.com/m3rciful/skishopbot/skishop/imagehost"
)

// Config aggregates everything the application needs to run.
type Config struct {
	Core      coreconfig.Config   `yaml:",inline"`
	Database  coredatabase.Config `yaml:"database"`
	ImageHost imagehost.Config    `yaml:"imagehost"`
}

// LoadConfig reads the application configuration from a YAML file and the
// environment, then validates it.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return nil, err
	}
	if err := cfg.ImageHost.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
