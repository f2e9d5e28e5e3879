package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration shared by the binaries.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DBPath      string `env:"DB_PATH" envDefault:"data/app.db"`
	DatabaseURL string `env:"DATABASE_URL"`
	SeedPath    string `env:"SEED_PATH" envDefault:"data/seeds/prefixes.json"`
}

// UsePostgres reports whether DATABASE_URL selects Postgres over the SQLite file.
func (c Config) UsePostgres() bool { return c.DatabaseURL != "" }

// Load reads an optional .env file and then parses the environment.
// Variables already set in the environment take precedence over .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
