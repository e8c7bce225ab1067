package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("USE_MOCK_LLM", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, 30*time.Second, cfg.GeminiTimeout)
	assert.Equal(t, ChatlogSQLite, cfg.ChatlogBackend)
	assert.Equal(t, "./data/chatlog.db", cfg.DBPath)
	assert.Equal(t, 256, cfg.ChatlogQueueSize)
	assert.Equal(t, "pldescubierto-chat", cfg.ServiceName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("USE_MOCK_LLM", "true")
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_TIMEOUT", "10s")
	t.Setenv("CHATLOG_BACKEND", "redis")
	t.Setenv("CHATLOG_QUEUE_SIZE", "32")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.GeminiTimeout)
	assert.Equal(t, ChatlogRedis, cfg.ChatlogBackend)
	assert.Equal(t, 32, cfg.ChatlogQueueSize)
	assert.True(t, cfg.UseMockLLM)
}

func TestLoadRequiresGeminiKeyWithoutMock(t *testing.T) {
	t.Setenv("USE_MOCK_LLM", "")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:             "8080",
			UseMockLLM:       true,
			ChatlogBackend:   ChatlogSQLite,
			DBPath:           "./data/chatlog.db",
			ChatlogQueueSize: 256,
		}
	}

	cfg := base()
	cfg.ChatlogBackend = "kafka"
	assert.ErrorContains(t, cfg.Validate(), "CHATLOG_BACKEND")

	cfg = base()
	cfg.DBPath = ""
	assert.ErrorContains(t, cfg.Validate(), "DB_PATH")

	cfg = base()
	cfg.ChatlogQueueSize = 0
	assert.ErrorContains(t, cfg.Validate(), "CHATLOG_QUEUE_SIZE")

	cfg = base()
	cfg.Port = ""
	assert.ErrorContains(t, cfg.Validate(), "PORT")

	// Redis backend does not need DB_PATH.
	cfg = base()
	cfg.ChatlogBackend = ChatlogRedis
	cfg.DBPath = ""
	assert.NoError(t, cfg.Validate())
}
