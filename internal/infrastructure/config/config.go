package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// SQLite database file.
	DBPath string

	// LLM question generation. An empty LLMURL disables the LLM and
	// serves the static question banks only.
	LLMURL   string // OpenAI-compatible endpoint, e.g. "http://localhost:1234"
	LLMModel string // model name, e.g. "qwen3-8b"

	// LogFormat selects "json" or "text" (colorized) log output.
	LogFormat string

	// SessionTTL is how long study sessions are retained. Zero disables
	// the retention sweeper.
	SessionTTL time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBPath:          getenvDefault("DB_PATH", "flashcards.db"),
		LLMURL:          os.Getenv("LLM_URL"),
		LLMModel:        getenvDefault("LLM_MODEL", "qwen3-8b"),
		LogFormat:       getenvDefault("LOG_FORMAT", "json"),
		SessionTTL:      getDurationDefault("SESSION_TTL", 24*time.Hour),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
