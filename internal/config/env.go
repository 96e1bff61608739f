package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Platform holds host settings read from the environment. Command-line flags
// take precedence; these values only provide their defaults.
type Platform struct {
	DBPath       string `env:"ARCADE_DB_PATH" envDefault:"~/.arcade/scores.db"`
	TickRate     int    `env:"ARCADE_TICK_RATE" envDefault:"60"`
	LogLevel     string `env:"ARCADE_LOG_LEVEL" envDefault:"info"`
	Lang         string `env:"ARCADE_LANG" envDefault:"en"`
	SSHHost      string `env:"ARCADE_SSH_HOST" envDefault:"0.0.0.0"`
	SSHPort      int    `env:"ARCADE_SSH_PORT" envDefault:"2222"`
	HostKeyPath  string `env:"ARCADE_SSH_HOST_KEY" envDefault:".ssh/arcade_ed25519"`
	OTelEndpoint string `env:"ARCADE_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"ARCADE_OTEL_ENABLED" envDefault:"true"`
}

// LoadEnv parses the platform settings from the environment.
func LoadEnv() (Platform, error) {
	var p Platform
	if err := ParseEnv(&p); err != nil {
		return p, err
	}
	return p, nil
}

// ParseEnv fills target from environment variables using its env tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
