// Package config loads quizly settings from the environment, with an
// optional .env file for local overrides.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings. Command-line flags win over
// environment variables, which win over the defaults here.
type Config struct {
	// BankPath points at a question-bank JSON file. Empty selects the
	// embedded bank.
	BankPath string `env:"QUIZLY_BANK"`

	// NoColor disables styled output. The conventional NO_COLOR
	// variable is honored as well.
	NoColor bool `env:"QUIZLY_NO_COLOR"`

	// Width is the terminal width the renderer lays out for.
	Width int `env:"QUIZLY_WIDTH" envDefault:"72"`

	// Debug enables session lifecycle logging on stderr.
	Debug bool `env:"QUIZLY_DEBUG"`
}

// Load reads the optional .env file and then the environment.
func Load() (Config, error) {
	// A missing .env file is fine; real env vars still apply.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	return cfg, nil
}
