package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/thefurer/PLdescubierto-chat/internal/chat"
	"github.com/thefurer/PLdescubierto-chat/internal/tui"
)

func main() {
	// Load .env file if it exists (for development)
	_ = godotenv.Load()

	baseURL := getEnv("CHAT_SERVER_URL", "http://localhost:8080")
	apiKey := os.Getenv("CHAT_API_KEY")

	controller := chat.NewController(chat.NewAPIClient(baseURL, apiKey))

	p := tea.NewProgram(tui.New(controller), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running chat: %v\n", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
