package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds flag defaults read from the environment.
// Flags given on the command line always win.
type EnvConfig struct {
	Format   string `env:"ARRAYKIT_FORMAT" envDefault:"text"`
	Verbose  bool   `env:"ARRAYKIT_VERBOSE"`
	Capacity int    `env:"ARRAYKIT_CAPACITY" envDefault:"10"`
}

// LoadEnvConfig parses ARRAYKIT_* variables.
func LoadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
