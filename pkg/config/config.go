package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseURL      string
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration
	EncryptionKey    string

	// Meeting-intelligence provider
	ProviderBaseURL      string
	ProviderCDNBaseURL   string
	ProviderTokenURL     string
	ProviderClientID     string
	ProviderClientSecret string
	ProviderTimeout      time.Duration
	WebhookSecret        string

	// Thumbnail enrichment
	ScreenshotAPIURL    string // optional external screenshot service, empty disables the step
	PlaceholderImageURL string // template URL, %s replaced by the first letter of the title

	// Sync tuning
	SyncCron       string
	SyncPageSize   int
	SyncMaxRecords int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 15 * time.Minute
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	refreshExpiry := 168 * time.Hour // 7 days
	if exp := os.Getenv("JWT_REFRESH_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			refreshExpiry = parsed
		}
	}

	providerTimeout := 15 * time.Second
	if t := os.Getenv("PROVIDER_TIMEOUT"); t != "" {
		if parsed, err := time.ParseDuration(t); err == nil {
			providerTimeout = parsed
		}
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=meetsync port=5432 sslmode=disable"),
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:  accessExpiry,
		JWTRefreshExpiry: refreshExpiry,
		EncryptionKey:    getEnv("ENCRYPTION_KEY", ""),

		ProviderBaseURL:      getEnv("PROVIDER_BASE_URL", "https://api.meetingrecorder.io"),
		ProviderCDNBaseURL:   getEnv("PROVIDER_CDN_BASE_URL", "https://media.meetingrecorder.io"),
		ProviderTokenURL:     getEnv("PROVIDER_TOKEN_URL", "https://api.meetingrecorder.io/oauth/token"),
		ProviderClientID:     getEnv("PROVIDER_CLIENT_ID", ""),
		ProviderClientSecret: getEnv("PROVIDER_CLIENT_SECRET", ""),
		ProviderTimeout:      providerTimeout,
		WebhookSecret:        getEnv("PROVIDER_WEBHOOK_SECRET", ""),

		ScreenshotAPIURL:    getEnv("SCREENSHOT_API_URL", ""),
		PlaceholderImageURL: getEnv("PLACEHOLDER_IMAGE_URL", "https://placehold.co/640x360/1f2937/ffffff?text=%s"),

		SyncCron:       getEnv("SYNC_CRON", "@every 30m"),
		SyncPageSize:   getEnvInt("SYNC_PAGE_SIZE", 100),
		SyncMaxRecords: getEnvInt("SYNC_MAX_RECORDS", 10000),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
