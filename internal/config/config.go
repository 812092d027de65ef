package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL   string
	UserAgent string
	OutputDir string

	Port            string
	FetchTimeoutSec int
	CacheTTLMin     int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseURL:   getEnv("TGJU_BASE_URL", "https://www.tgju.org"),
		UserAgent: getEnv("USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		Port:            getEnv("PORT", "8080"),
		FetchTimeoutSec: getEnvInt("FETCH_TIMEOUT_SEC", 20),
		CacheTTLMin:     getEnvInt("CACHE_TTL_MIN", 5),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
