// Package config loads the gateway's configuration from environment
// variables (optionally seeded from a .env file), following the
// teacher's Load[T]/MustLoad[T] generic wrapper around caarlos0/env.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load populates cfg from the environment, first loading a .env file if
// one is present in the working directory (a missing .env is not an
// error).
func Load[T any](cfg T) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("config: loading .env: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parsing environment: %w", err)
	}
	return nil
}

// MustLoad is Load, panicking on error. Intended for use in main, where
// there is no meaningful recovery from a bad configuration.
func MustLoad[T any](cfg T) T {
	if err := Load(cfg); err != nil {
		panic(err)
	}
	return cfg
}
