/*
Package config loads server configuration from the environment.

PURPOSE:
  Gathers everything the server needs to start: the listen port, the
  database path, and the payroll defaults (jurisdiction year span is
  compiled in; the monthly minimum wage is deployment configuration
  because it changes every statutory year).

SOURCES, in order:
  1. A .env file in the working directory, when present (godotenv)
  2. Process environment variables (caarlos0/env struct tags)
  3. Command-line flags in cmd/server override both

USAGE:
  cfg, err := config.Load()
*/
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server struct {
		Port            int `env:"PORT" envDefault:"8080"`
		ReadTimeout     int `env:"READ_TIMEOUT" envDefault:"15"`
		WriteTimeout    int `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int `env:"SHUTDOWN_TIMEOUT" envDefault:"30"`
	} `envPrefix:"SERVER_"`

	Database struct {
		// Path is the SQLite file; ":memory:" runs without persistence.
		Path string `env:"PATH" envDefault:"shifts.db"`
	} `envPrefix:"DATABASE_"`

	Payroll struct {
		// MonthlyMinimumWage prices employees without an explicit rate:
		// hourly default = wage / the jurisdiction's monthly hours.
		MonthlyMinimumWage string `env:"MONTHLY_MINIMUM_WAGE" envDefault:"1423500"`
		// RulesFile optionally points at a JSON jurisdiction definition;
		// empty means the compiled-in Colombian table.
		RulesFile string `env:"RULES_FILE" envDefault:""`
	} `envPrefix:"PAYROLL_"`
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
