package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	FrontendURL string `env:"FRONTEND_URL"`

	// MyMemory provider settings. Email identifies the operator to the
	// provider and raises the free-tier quota; it is optional.
	MyMemoryURL   string `env:"MYMEMORY_URL" envDefault:"https://api.mymemory.translated.net"`
	MyMemoryEmail string `env:"MYMEMORY_EMAIL"`

	// UpstreamTimeout bounds every call to the translation provider. The
	// original site relied on the transport default; an explicit bound is
	// a deliberate resilience improvement over it.
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"20s"`

	// Optional bcrypt-hash overrides for the built-in accounts.
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	UsersPasswordHash string `env:"USERS_PASSWORD_HASH"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
