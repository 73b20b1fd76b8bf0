package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// Token Configuration
	JWTSecret    string
	TokenTTLDays int
	// Data directory holding the CSV listing ledger
	DataDir string
	// Redis Configuration (optional; rate limiting falls back to in-memory)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitAuthThreshold   int
	RateLimitGlobalThreshold int
	// Migrations
	MigrationsPath string
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DBUrl:        getEnv("DATABASE_URL", ""),
		FrontendURL:  strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		TokenTTLDays: getEnvInt("TOKEN_TTL_DAYS", 30),
		DataDir:      getEnv("DATA_DIR", "./data"),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitAuthThreshold:   getEnvInt("RATE_LIMIT_AUTH_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		MigrationsPath:           getEnv("MIGRATIONS_PATH", "migrations"),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Issued tokens will not survive a restart.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
