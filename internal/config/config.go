package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// logger config
	LOG_FILE_PATH string
	// pipeline defaults, overridable per run via flags
	OUTPUT_DIR string
	TOP_N      int
}

// LoadEnvConfig reads .env (if present) and environment variables into
// DefaultEnvConfig. A missing .env file is not an error; the system runs
// fine on defaults.
func LoadEnvConfig() error {
	_ = godotenv.Load()

	DefaultEnvConfig = &envConfig{
		LOG_FILE_PATH: getEnvString("LOG_FILE_PATH", ""),
		OUTPUT_DIR:    getEnvString("OUTPUT_DIR", "."),
		TOP_N:         getEnvInt("TOP_N", 3),
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}
