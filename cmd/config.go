package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment. A .env
// file, when present, fills in variables that are not already set.
type Config struct {
	HTTPPort string `env:"HTTP_PORT,default=8080"`

	DBHost     string `env:"DB_HOST,default=localhost"`
	DBPort     string `env:"DB_PORT,default=5432"`
	DBUser     string `env:"DB_USER,default=postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME,default=sales"`
	DBSslMode  string `env:"DB_SSLMODE,default=disable"`

	LogLevel string `env:"LOG_LEVEL,default=info"`

	PurgeSchedule  string        `env:"PURGE_SCHEDULE,default=0 */10 * * * *"`
	PurgeRetention time.Duration `env:"PURGE_RETENTION,default=720h"`
	PurgeBatchSize int           `env:"PURGE_BATCH_SIZE,default=100"`
}

// LoadConfig loads envFile (a missing file is not an error) and decodes the
// environment into a Config.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var config Config
	if err := envdecode.Decode(&config); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}

	if config.PurgeRetention < 0 {
		return Config{}, fmt.Errorf("PURGE_RETENTION must not be negative, got %s", config.PurgeRetention)
	}
	if config.PurgeBatchSize <= 0 {
		return Config{}, fmt.Errorf("PURGE_BATCH_SIZE must be positive, got %d", config.PurgeBatchSize)
	}

	return config, nil
}

// DSN returns the PostgreSQL connection string in key=value form, accepted
// by both the GORM driver and lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
