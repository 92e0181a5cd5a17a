package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	RedisURL        string
	LogLevel        string
	Environment     string
	CORSOrigins     string
	RefreshInterval time.Duration
	RankingLimit    int
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),
		RefreshInterval: getDurationEnv("REFRESH_INTERVAL", time.Hour),
		RankingLimit:    getIntEnv("RANKING_LIMIT", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
