package config

import (
	"fmt"
	"os"
	"strings"

	"aceduel/internal/logging"

	"github.com/joho/godotenv"
)

type Config struct {
	Player1Name  string
	Player2Name  string
	Database     string // empty disables duel history
	SpectateAddr string // empty disables the spectator feed
	LogLevel     string
	LogFile      string
}

// Load reads configuration from the environment, after merging a .env file if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	level := strings.ToLower(getEnv("LOG_LEVEL", "info"))
	if _, err := logging.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	logFile := getEnv("LOG_FILE", "duel.log")
	if logFile == "" {
		return nil, fmt.Errorf("LOG_FILE cannot be empty")
	}

	return &Config{
		Player1Name:  getEnv("DUEL_PLAYER1", "Player 1"),
		Player2Name:  os.Getenv("DUEL_PLAYER2"),
		Database:     getEnv("DATABASE", "duels.db"),
		SpectateAddr: os.Getenv("SPECTATE_ADDR"),
		LogLevel:     level,
		LogFile:      logFile,
	}, nil
}

// SecondName returns the seat-2 display name for the chosen mode.
func (c *Config) SecondName(vsComputer bool) string {
	if c.Player2Name != "" {
		return c.Player2Name
	}
	if vsComputer {
		return "Computer"
	}
	return "Player 2"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
