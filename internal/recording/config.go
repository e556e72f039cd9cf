package recording

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the recording daemon settings, loaded from the environment.
type Config struct {
	Addr   string `env:"GRIDLIFE_ADDR" envDefault:":8470"`
	DBPath string `env:"GRIDLIFE_DB" envDefault:"gridlife.db"`
}

// ParseEnv loads the daemon configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
