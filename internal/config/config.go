package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port          string
	DatabasePath  string
	UploadDir     string
	SessionSecret string
	Environment   string
	LogLevel      string
	OpenAIAPIKey  string
	OpenAIBaseURL string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnvWithDefault("PORT", "8080"),
		DatabasePath:  getEnvWithDefault("DATABASE_PATH", "events.db"),
		UploadDir:     getEnvWithDefault("UPLOAD_DIR", "static/uploads"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Environment:   getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:      getEnvWithDefault("LOG_LEVEL", "info"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: getEnvWithDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
	}

	// Validate required fields. The OpenAI key stays optional: the chat
	// assistant degrades to its fallback reply without it.
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
