package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	OrderServiceURL string
	KafkaBrokers    []string
	PaymentTopic    string
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{
		Port:            getEnv("PORT", "8084"),
		Env:             getEnv("ENV", "development"),
		OrderServiceURL: os.Getenv("ORDER_SERVICE_URL"),
		KafkaBrokers:    strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		PaymentTopic:    getEnv("PAYMENT_TOPIC", "payment-events"),
	}
	if cfg.OrderServiceURL == "" {
		return nil, fmt.Errorf("ORDER_SERVICE_URL environment variable not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
