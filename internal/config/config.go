package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is everything the bot consumes from the environment.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	Prefix       string `env:"COMMAND_PREFIX" envDefault:"$"`

	DBHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	DBPort     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	DBUser     string `env:"POSTGRES_USER" envDefault:"hbot"`
	DBPassword string `env:"POSTGRES_PASSWORD" envDefault:""`
	DBName     string `env:"POSTGRES_DATABASE" envDefault:"hbot"`
	DBPoolSize int    `env:"POSTGRES_POOL_SIZE" envDefault:"10"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
}

// New loads .env when present, then parses the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if len(cfg.Prefix) != 1 {
		return nil, fmt.Errorf("COMMAND_PREFIX must be a single character, got %q", cfg.Prefix)
	}
	return cfg, nil
}
