package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort      string
	DBDriver        string
	DatabaseURL     string
	DBSeed          bool
	DBMaxOpenConns  int
	LogLevel        string
	GinMode         string
	ShutdownTimeout time.Duration
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_URL", "host=localhost port=5432 user=postgres password=postgres dbname=trivia sslmode=disable")
	v.SetDefault("DB_SEED", false)
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	cfg := &Config{
		ServerPort:      v.GetString("SERVER_PORT"),
		DBDriver:        v.GetString("DB_DRIVER"),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		DBSeed:          v.GetBool("DB_SEED"),
		DBMaxOpenConns:  v.GetInt("DB_MAX_OPEN_CONNS"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		GinMode:         v.GetString("GIN_MODE"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	switch cfg.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("unsupported GIN_MODE %q", cfg.GinMode)
	}
	if cfg.DBMaxOpenConns <= 0 {
		return nil, fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", cfg.DBMaxOpenConns)
	}

	return cfg, nil
}
