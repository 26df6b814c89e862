package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Env            string
	UserServiceURL string

	// ServiceURLs maps the first path segment under /api to the owning
	// service base URL.
	ServiceURLs map[string]string
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		UserServiceURL: os.Getenv("USER_SERVICE_URL"),
		ServiceURLs: map[string]string{
			"users":      os.Getenv("USER_SERVICE_URL"),
			"products":   os.Getenv("PRODUCT_SERVICE_URL"),
			"orders":     os.Getenv("ORDER_SERVICE_URL"),
			"carts":      os.Getenv("ORDER_SERVICE_URL"),
			"payments":   os.Getenv("PAYMENT_SERVICE_URL"),
			"shippings":  os.Getenv("SHIPPING_SERVICE_URL"),
			"favourites": os.Getenv("FAVOURITE_SERVICE_URL"),
		},
	}

	for name, url := range cfg.ServiceURLs {
		if url == "" {
			return nil, fmt.Errorf("service URL for %q not set", name)
		}
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
