package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration, loaded from the environment
// with an optional .env file for local development.
type Config struct {
	Port           string
	DatabasePath   string
	JWTSecret      string
	OpenAIAPIKey   string
	OpenAIModel    string
	LogLevel       string
	RequestTimeout int // seconds, bounds the assistant backend call
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on actual environment variables")
	}

	return &Config{
		Port:           getEnvWithDefault("PORT", "3001"),
		DatabasePath:   getEnvWithDefault("DB_PATH", "data/cyclefem.db"),
		JWTSecret:      getEnvWithDefault("JWT_SECRET", "change_me_in_production"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini"),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		RequestTimeout: getEnvIntWithDefault("REQUEST_TIMEOUT", 30),
	}
}

// AssistantEnabled reports whether an OpenAI key is configured; without
// one the chat endpoint serves canned fallback responses only.
func (cfg *Config) AssistantEnabled() bool {
	return cfg.OpenAIAPIKey != ""
}

func getEnvWithDefault(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
