package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the restaurant API needs at startup. Values come
// from environment variables; cmd/ entrypoints load a .env file first.
type Config struct {
	Env  string
	HTTP struct {
		Addr string
	}
	CORSOrigin string
	Database   DatabaseConfig
	MealDB     MealDBConfig
	Log        struct {
		Level  string
		Format string
	}
	MigrationsDir string
	SeedsDir      string
}

// DatabaseConfig mirrors the pg connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// MealDBConfig configures the TheMealDB upstream.
type MealDBConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// DSN builds a lib/pq connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// IsProduction gates error-detail redaction in 500 responses.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func Load() *Config {
	cfg := &Config{}
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":5000")
	cfg.CORSOrigin = getEnv("CORS_ORIGIN", "http://localhost:3000")

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "password")
	cfg.Database.Name = getEnv("DB_NAME", "restaurant_db")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = parseInt(getEnv("DB_MAX_CONNS", "20"), 20)
	cfg.Database.MaxIdle = parseInt(getEnv("DB_MAX_IDLE", "5"), 5)

	cfg.MealDB.BaseURL = getEnv("MEALDB_BASE_URL", "https://www.themealdb.com/api/json/v1/1")
	cfg.MealDB.TimeoutSeconds = parseInt(getEnv("MEALDB_TIMEOUT_SECONDS", "10"), 10)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.MigrationsDir = getEnv("MIGRATIONS_DIR", "migrations")
	cfg.SeedsDir = getEnv("SEEDS_DIR", "seeds")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
