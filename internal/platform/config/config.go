package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	GatewayPort string
	Environment string
	LogLevel    string

	BackendBaseURL string
	ContestID      int64

	PollInterval        time.Duration
	LeaderboardInterval time.Duration
	ContestLoadInterval time.Duration

	FetchRetryAttempts  int
	FetchRetryBaseDelay time.Duration
	RequestTimeout      time.Duration

	IdentityStoreBackend string // "file" or "redis"
	IdentityStorePath    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		GatewayPort: getEnv("GATEWAY_PORT", "8090"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		BackendBaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:8080/api"),
		ContestID:      int64(getEnvAsInt("CONTEST_ID", 1)),

		PollInterval:        getEnvAsDuration("POLL_INTERVAL", 2*time.Second),
		LeaderboardInterval: getEnvAsDuration("LEADERBOARD_INTERVAL", 15*time.Second),
		ContestLoadInterval: getEnvAsDuration("CONTEST_LOAD_INTERVAL", 30*time.Second),

		FetchRetryAttempts:  getEnvAsInt("FETCH_RETRY_ATTEMPTS", 3),
		FetchRetryBaseDelay: getEnvAsDuration("FETCH_RETRY_BASE_DELAY", 200*time.Millisecond),
		RequestTimeout:      getEnvAsDuration("REQUEST_TIMEOUT", 10*time.Second),

		IdentityStoreBackend: getEnv("IDENTITY_STORE_BACKEND", "file"),
		IdentityStorePath:    getEnv("IDENTITY_STORE_PATH", ".contest_identity.json"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return fallback
}
