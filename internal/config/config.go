package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration, read from the environment
type Config struct {
	MongoURI           string
	MongoDatabase      string
	RedisAddr          string
	HTTPPort           string
	JWTSecret          string
	CORSAllowedOrigins string
	DashboardCacheTTL  time.Duration
}

// Load reads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:      getEnv("MONGO_DATABASE", "safetyvitals"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		JWTSecret:          getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		DashboardCacheTTL:  getEnvDuration("DASHBOARD_CACHE_TTL_SECONDS", 60*time.Second),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if secs, err := strconv.Atoi(val); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultVal
}
