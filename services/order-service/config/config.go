package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Env            string
	RedisURL       string
	UserServiceURL string
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{
		Port:           getEnv("PORT", "8083"),
		Env:            getEnv("ENV", "development"),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
		UserServiceURL: os.Getenv("USER_SERVICE_URL"),
	}
	if cfg.UserServiceURL == "" {
		return nil, fmt.Errorf("USER_SERVICE_URL environment variable not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
