package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix scopes the nested lookup keys. Every field is tagged with its full
// CAREOPS_* name, which envconfig resolves through its unprefixed fallback.
const EnvPrefix = "CAREOPS"

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Jobs     JobsConfig
}

type AppConfig struct {
	Env       string `envconfig:"CAREOPS_ENV" default:"development"`
	Port      int    `envconfig:"CAREOPS_PORT" default:"4000"`
	LogLevel  string `envconfig:"CAREOPS_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"CAREOPS_LOG_FORMAT" default:"json"`
}

type DatabaseConfig struct {
	URL           string `envconfig:"CAREOPS_DATABASE_URL" required:"true"`
	RunMigrations bool   `envconfig:"CAREOPS_RUN_MIGRATIONS" default:"true"`
}

// RedisConfig is optional; an empty Addr disables the confirmation queue.
type RedisConfig struct {
	Addr     string `envconfig:"CAREOPS_REDIS_ADDR"`
	Password string `envconfig:"CAREOPS_REDIS_PASSWORD"`
	DB       int    `envconfig:"CAREOPS_REDIS_DB" default:"0"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type JobsConfig struct {
	Enabled              bool          `envconfig:"CAREOPS_JOBS_ENABLED" default:"true"`
	LowStockScanInterval time.Duration `envconfig:"CAREOPS_LOW_STOCK_SCAN_INTERVAL" default:"30m"`
	DispatchInterval     time.Duration `envconfig:"CAREOPS_DISPATCH_INTERVAL" default:"1m"`
	DispatchBatch        int           `envconfig:"CAREOPS_DISPATCH_BATCH" default:"50"`
}

// Load reads an optional .env file and then the CAREOPS_* environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.App.Port)
	}
	if cfg.Jobs.DispatchBatch <= 0 {
		cfg.Jobs.DispatchBatch = 50
	}
	return &cfg, nil
}
