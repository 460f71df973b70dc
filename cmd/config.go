package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"moving"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// RedisAddr selects the Redis session store. Sessions are kept in memory
	// when it is empty.
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	CookieSecure  bool          `env:"COOKIE_SECURE" envDefault:"false"`

	RegionCacheTTL        time.Duration `env:"REGION_CACHE_TTL" envDefault:"10m"`
	RegionRefreshSchedule string        `env:"REGION_REFRESH_SCHEDULE" envDefault:"0 */5 * * * *"`
	SessionSweepSchedule  string        `env:"SESSION_SWEEP_SCHEDULE" envDefault:"0 * * * * *"`

	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig reads envFile, when it exists, into the environment and parses
// the environment into a Config. Variables already set take precedence.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// DSN is the connection string for the Postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
