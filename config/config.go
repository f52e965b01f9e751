package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	StoragePath   string
	TokenSecret   string
	TokenTTLHours int
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	ttl, err := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "1"))
	if err != nil || ttl <= 0 {
		ttl = 1
	}

	return &Config{
		StoragePath:   getEnv("STORAGE_PATH", "kanban.db"),
		TokenSecret:   getEnv("TOKEN_SECRET", "supersecretkey"),
		TokenTTLHours: ttl,
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
