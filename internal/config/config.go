package config

import (
	"github.com/caarlos0/env/v11"

	"marketing-datagen/internal/config/configs"
)

// Config aggregates all configuration sections for the generator. Fields
// are populated from environment variables using the caarlos0/env library;
// nested structs are parsed with their envPrefix. Every field has a default,
// so running with an empty environment produces the standard dataset under
// ./data.
type Config struct {
	// Env names the deployment environment. It is only attached to log
	// records.
	Env string `env:"ENV" envDefault:"prod"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Output configures the dataset destination (OUTPUT_ prefix).
	Output configs.Output `envPrefix:"OUTPUT_"`

	// Generator configures the random source (GEN_ prefix).
	Generator configs.Generator `envPrefix:"GEN_"`
}

// Load reads configuration from environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
