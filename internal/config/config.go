package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Env             string        `env:"APP_ENV" envDefault:"dev"`
	HTTPPort        string        `env:"PORT" envDefault:"3000"`
	RateRPS         int           `env:"RATE_RPS" envDefault:"100"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	ViewsDir        string        `env:"VIEWS_DIR" envDefault:"views"`
	PublicDir       string        `env:"PUBLIC_DIR" envDefault:"public"`
	SeedFile        string        `env:"SEED_FILE"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads .env (when present) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
