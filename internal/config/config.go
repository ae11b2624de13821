package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/xhit/go-str2duration/v2"
)

// Config holds the process configuration read from the environment
type Config struct {
	// Discord
	Token         string
	ApplicationID string
	GuildID       string
	OwnerIDs      []string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// DevLogsDBPath is the sqlite file the devlogs archive lives in
	DevLogsDBPath string

	// Logging
	LogLevel       string
	LogDevelopment bool

	// Background loops
	TimerPollInterval  time.Duration
	RoleColourInterval time.Duration
}

// Load reads an optional .env file and then the environment
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{
		Token:         getEnv("DISCORD_TOKEN", ""),
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		OwnerIDs:      splitList(getEnv("OWNER_IDS", "")),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		DevLogsDBPath: getEnv("DEVLOGS_DB_PATH", "devlogs.db"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	if cfg.Token == "" {
		return nil, errors.New("DISCORD_TOKEN environment variable is required")
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	if cfg.LogDevelopment, err = strconv.ParseBool(getEnv("LOG_DEVELOPMENT", "false")); err != nil {
		return nil, fmt.Errorf("invalid LOG_DEVELOPMENT: %w", err)
	}
	if cfg.TimerPollInterval, err = str2duration.ParseDuration(getEnv("TIMER_POLL_INTERVAL", "3s")); err != nil {
		return nil, fmt.Errorf("invalid TIMER_POLL_INTERVAL: %w", err)
	}
	if cfg.RoleColourInterval, err = str2duration.ParseDuration(getEnv("ROLECOLOUR_INTERVAL", "5m")); err != nil {
		return nil, fmt.Errorf("invalid ROLECOLOUR_INTERVAL: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
