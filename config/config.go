package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/levelup/levelup-api/utils/logger"
)

// Config holds everything read from the environment.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	Port        string `env:"PORT" envDefault:"8000"`
	CORSOrigin  string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`
}

// Load reads .env (when present) and parses the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, reading environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
