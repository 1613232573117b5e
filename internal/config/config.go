package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Catalog CatalogConfig
	Pricing PricingConfig
	Receipt ReceiptConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type StoreConfig struct {
	BaseURL    string
	Collection string
	Timeout    time.Duration
}

type RedisConfig struct {
	Addr     string
	CacheTTL time.Duration
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
	Enabled bool
}

type CatalogConfig struct {
	DSN string
}

type PricingConfig struct {
	// Legacy price generation: 1 prices the zip garment at 28, 2 at 43.
	Generation int
}

type ReceiptConfig struct {
	Secret string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", ":8080"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Store: StoreConfig{
			BaseURL:    getEnv("STORE_URL", "https://pocketbase.eulab.cloud"),
			Collection: getEnv("STORE_COLLECTION", "pdg_servizio_felpa"),
			Timeout:    time.Duration(getEnvInt("STORE_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			CacheTTL: time.Duration(getEnvInt("CACHE_TTL_SECONDS", 30)) * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Topic:   getEnv("KAFKA_TOPIC_ORDERS", "order-events"),
			Enabled: getEnvBool("KAFKA_ENABLED", false),
		},
		Catalog: CatalogConfig{
			DSN: getEnv("CATALOG_DSN", "file:catalog.db?cache=shared"),
		},
		Pricing: PricingConfig{
			Generation: getEnvInt("PRICE_GENERATION", 2),
		},
		Receipt: ReceiptConfig{
			Secret: getEnv("RECEIPT_SECRET", "dev-receipt-secret"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
