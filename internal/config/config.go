// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the bot process.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Profile  ProfileConfig
	Backend  BackendConfig
	Telegram TelegramConfig
	Log      LogConfig
}

// ServerConfig holds the webhook server configuration.
type ServerConfig struct {
	Host    string
	Port    int
	GinMode string
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CacheConfig holds the session/profile cache configuration.
type CacheConfig struct {
	Type     string
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// ProfileConfig holds the persisted profile store configuration.
type ProfileConfig struct {
	Type     string
	URI      string
	Database string
}

// BackendConfig holds the financial backend RPC configuration.
type BackendConfig struct {
	URL     string
	Token   string
	Timeout time.Duration
}

// TelegramConfig holds the chat transport configuration.
type TelegramConfig struct {
	BotToken    string
	APIBaseURL  string
	WebhookPath string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:    getEnv("SERVER_HOST", "0.0.0.0"),
			Port:    getEnvAsInt("SERVER_PORT", 8080),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Cache: CacheConfig{
			Type:     getEnv("CACHE_TYPE", "redis"),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvAsInt("SESSION_TTL_SECONDS", 86400)) * time.Second,
		},
		Profile: ProfileConfig{
			Type:     getEnv("PROFILE_STORE_TYPE", "mongodb"),
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "finora_bot"),
		},
		Backend: BackendConfig{
			URL:     getEnv("BACKEND_RPC_URL", "http://localhost:8081/rpc"),
			Token:   getEnv("BACKEND_RPC_TOKEN", ""),
			Timeout: time.Duration(getEnvAsInt("BACKEND_RPC_TIMEOUT_SECONDS", 20)) * time.Second,
		},
		Telegram: TelegramConfig{
			BotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
			APIBaseURL:  getEnv("TELEGRAM_API_BASE_URL", "https://api.telegram.org"),
			WebhookPath: getEnv("TELEGRAM_WEBHOOK_PATH", "/telegram/webhook"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if cfg.Telegram.BotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	return cfg, nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
