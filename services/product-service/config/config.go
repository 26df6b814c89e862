package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string
	MongoURL string
	MongoDB  string
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{
		Port:     getEnv("PORT", "8082"),
		Env:      getEnv("ENV", "development"),
		MongoURL: os.Getenv("MONGO_URL"),
		MongoDB:  getEnv("MONGO_DB", "products"),
	}
	if cfg.MongoURL == "" {
		return nil, fmt.Errorf("MONGO_URL environment variable not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
