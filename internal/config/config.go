package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	StoreDSN    string
	APIBase     string
	LogLevel    string
	LogJSON     bool
	HTTPTimeout time.Duration
}

// Load reads configuration from the environment, with a .env file as a
// convenience. Everything has a default; nothing is required.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("TASKWISE_PORT")
	if port == "" {
		port = "8080"
	}

	dsn := os.Getenv("TASKWISE_STORE_DSN")
	if dsn == "" {
		dsn = ":memory:"
	}

	apiBase := os.Getenv("TASKWISE_API_URL")
	if apiBase == "" {
		apiBase = "http://localhost:" + port
	}

	logLevel := os.Getenv("TASKWISE_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	timeout := 10 * time.Second
	if v := os.Getenv("TASKWISE_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		}
	}

	return &Config{
		AppPort:     port,
		StoreDSN:    dsn,
		APIBase:     apiBase,
		LogLevel:    logLevel,
		LogJSON:     os.Getenv("TASKWISE_LOG_JSON") == "true",
		HTTPTimeout: timeout,
	}
}
