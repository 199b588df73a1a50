package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultWebsiteURL is the site linked from job posts
const DefaultWebsiteURL = "https://hustlexet.com"

// Config holds assistant bot configuration
type Config struct {
	BotToken    string
	DataDir     string // empty keeps every chat in memory
	ChannelID   string // job posting is disabled when empty
	WebsiteURL  string
	MetricsAddr string
	Log         LogConfig
}

// RelayConfig holds submission relay configuration.
// Secrets may be empty: the relay reports that per request.
type RelayConfig struct {
	BotToken   string
	ChannelID  string
	WebsiteURL string
	APIURL     string
	Addr       string
	Log        LogConfig
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string
	File  string
}

// Load reads bot configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		DataDir:     lookupEnv("DATA_DIR", "data"),
		ChannelID:   os.Getenv("CHANNEL_ID"),
		WebsiteURL:  getEnv("WEBSITE_URL", DefaultWebsiteURL),
		MetricsAddr: os.Getenv("METRICS_ADDR"),
		Log:         loadLog(),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	return cfg, nil
}

// LoadRelay reads relay configuration from environment variables
func LoadRelay() *RelayConfig {
	_ = godotenv.Load()

	return &RelayConfig{
		BotToken:   os.Getenv("BOT_TOKEN"),
		ChannelID:  os.Getenv("CHANNEL_ID"),
		WebsiteURL: os.Getenv("WEBSITE_URL"),
		APIURL:     os.Getenv("TELEGRAM_API_URL"),
		Addr:       getEnv("RELAY_ADDR", ":8080"),
		Log:        loadLog(),
	}
}

// Ready reports whether both relay secrets are set
func (c *RelayConfig) Ready() bool {
	return c.BotToken != "" && c.ChannelID != ""
}

func loadLog() LogConfig {
	return LogConfig{
		Level: getEnv("LOG_LEVEL", "info"),
		File:  os.Getenv("LOG_FILE"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// lookupEnv is like getEnv but keeps an explicitly empty value
func lookupEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
