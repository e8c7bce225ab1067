// Package config provides application configuration from environment
// variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Chatlog backend selectors.
const (
	ChatlogSQLite = "sqlite"
	ChatlogRedis  = "redis"
	ChatlogNATS   = "nats"
	ChatlogOff    = "off"
)

type Config struct {
	// HTTP server configuration
	Port       string
	ChatAPIKey string // public low-privilege key required on POST when set

	// Gemini configuration
	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration
	UseMockLLM    bool

	// Interaction log configuration
	ChatlogBackend     string
	DBPath             string
	RedisURL           string
	NatsURL            string
	NatsChatlogSubject string
	ChatlogQueueSize   int

	// Service configuration
	ServiceName string
}

func Load() (*Config, error) {
	cfg := &Config{
		// HTTP settings
		Port:       getEnv("PORT", "8080"),
		ChatAPIKey: getEnv("CHAT_API_KEY", ""),

		// Gemini settings
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiTimeout: getDurationEnv("GEMINI_TIMEOUT", 30*time.Second),
		UseMockLLM:    getBoolEnv("USE_MOCK_LLM", false),

		// Interaction log settings
		ChatlogBackend:     getEnv("CHATLOG_BACKEND", ChatlogSQLite),
		DBPath:             getEnv("DB_PATH", "./data/chatlog.db"),
		RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379/0"),
		NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		NatsChatlogSubject: getEnv("NATS_CHATLOG_SUBJECT", "chatlog.interaction"),
		ChatlogQueueSize:   getIntEnv("CHATLOG_QUEUE_SIZE", 256),

		// Service settings
		ServiceName: getEnv("SERVICE_NAME", "pldescubierto-chat"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if !c.UseMockLLM && c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required unless USE_MOCK_LLM=1")
	}
	switch c.ChatlogBackend {
	case ChatlogSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH cannot be empty with the sqlite chatlog backend")
		}
	case ChatlogRedis, ChatlogNATS, ChatlogOff:
	default:
		return fmt.Errorf("unknown CHATLOG_BACKEND %q", c.ChatlogBackend)
	}
	if c.ChatlogQueueSize <= 0 {
		return fmt.Errorf("CHATLOG_QUEUE_SIZE must be > 0")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return v == "1" || v == "true" || v == "TRUE"
}
