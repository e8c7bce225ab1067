package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/thefurer/PLdescubierto-chat/internal/chatlog"
	"github.com/thefurer/PLdescubierto-chat/internal/config"
	"github.com/thefurer/PLdescubierto-chat/internal/handlers"
	"github.com/thefurer/PLdescubierto-chat/internal/llm"
	"github.com/thefurer/PLdescubierto-chat/internal/transport"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load .env file if it exists (for development)
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting chat service",
		"service", cfg.ServiceName,
		"port", cfg.Port,
		"model", cfg.GeminiModel,
		"chatlog_backend", cfg.ChatlogBackend,
	)

	// Model provider.
	var provider llm.Provider
	if cfg.UseMockLLM {
		slog.Info("Using mock model provider")
		provider = llm.NewMockProvider()
	} else {
		gcfg := llm.DefaultGeminiConfig(cfg.GeminiAPIKey)
		gcfg.Model = cfg.GeminiModel
		gcfg.Timeout = cfg.GeminiTimeout
		provider = llm.NewGeminiClient(gcfg)
	}

	// Interaction log store.
	store, err := newChatlogStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize chatlog store", "error", err)
		os.Exit(1)
	}

	var recorder transport.Recorder
	var chatLogger *chatlog.Logger
	if store != nil {
		chatLogger = chatlog.NewLogger(store, cfg.ChatlogQueueSize)
		recorder = chatLogger
		slog.Info("Interaction logging enabled", "backend", cfg.ChatlogBackend)
	} else {
		slog.Info("Interaction logging disabled")
	}

	responder := handlers.NewResponder(provider)
	server := transport.NewServer(responder, recorder, cfg.ChatAPIKey)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Chat service listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	slog.Info("Received signal, shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown failed", "error", err)
	}
	if chatLogger != nil {
		if err := chatLogger.Close(); err != nil {
			slog.Error("Failed to close chat logger", "error", err)
		}
	}

	slog.Info("Chat service stopped")
}

func newChatlogStore(cfg *config.Config) (chatlog.Store, error) {
	switch cfg.ChatlogBackend {
	case config.ChatlogSQLite:
		return chatlog.NewSQLiteStore(cfg.DBPath)
	case config.ChatlogRedis:
		// Interaction records kept for 30 days.
		return chatlog.NewRedisStore(cfg.RedisURL, 30*24*time.Hour)
	case config.ChatlogNATS:
		return chatlog.NewNATSStore(cfg.NatsURL, cfg.NatsChatlogSubject, cfg.ServiceName)
	default:
		return nil, nil
	}
}
