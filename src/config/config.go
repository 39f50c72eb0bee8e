package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	QBOClientID     string
	QBOClientSecret string
	QBORefreshToken string
	QBORealmID      string
	QBOEnv          string

	PlaidClientID    string
	PlaidSecret      string
	PlaidEnv         string
	PlaidAccessToken string

	SlackWebhookURL        string
	SlackVerificationToken string

	Timezone     string
	SyncInterval time.Duration
}

func Load() Config {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		QBOClientID:     getEnv("QBO_CLIENT_ID", ""),
		QBOClientSecret: getEnv("QBO_CLIENT_SECRET", ""),
		QBORefreshToken: getEnv("QBO_REFRESH_TOKEN", ""),
		QBORealmID:      getEnv("QBO_REALM_ID", ""),
		QBOEnv:          getEnv("QBO_ENV", "sandbox"),

		PlaidClientID:    getEnv("PLAID_CLIENT_ID", ""),
		PlaidSecret:      getEnv("PLAID_SECRET", ""),
		PlaidEnv:         getEnv("PLAID_ENV", "sandbox"),
		PlaidAccessToken: getEnv("PLAID_ACCESS_TOKEN", ""),

		SlackWebhookURL:        getEnv("SLACK_WEBHOOK_URL", ""),
		SlackVerificationToken: getEnv("SLACK_VERIFICATION_TOKEN", ""),

		Timezone:     getEnv("TIMEZONE", "UTC"),
		SyncInterval: getDurationEnv("SYNC_INTERVAL", 6*time.Hour),
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return d
}
