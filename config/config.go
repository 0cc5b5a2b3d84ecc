package database

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	MongoURL      string
	DBName        string
	DBTimeout     time.Duration
	ListLimit     int64
	RedisURL      string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	LogLevel      string
	LogFormat     string
}

// LoadConfig reads the environment, optionally seeded from a .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Could not read .env file", "error", err)
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8000"),
		MongoURL:      os.Getenv("MONGO_URL"),
		DBName:        os.Getenv("DB_NAME"),
		DBTimeout:     getEnvAsDuration("DB_TIMEOUT", 10*time.Second),
		ListLimit:     int64(getEnvAsInt("LIST_LIMIT", 1000)),
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		CacheTTL:      getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
	}

	if cfg.MongoURL == "" {
		return nil, errors.New("MONGO_URL is not set in the environment variables")
	}
	if cfg.DBName == "" {
		return nil, errors.New("DB_NAME is not set in the environment variables")
	}
	if cfg.ListLimit < 1 {
		slog.Warn("Invalid LIST_LIMIT, falling back to default", "LIST_LIMIT", cfg.ListLimit)
		cfg.ListLimit = 1000
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		slog.Error("Invalid PORT environment variable. Falling back to default.", "PORT", cfg.Port)
		cfg.Port = "8000"
	}

	return cfg, nil
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
