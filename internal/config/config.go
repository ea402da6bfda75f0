package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port     int
	APIKey   string // API key for HTTP authentication
	LogLevel string
	LogFormat string
	ServiceName string
	Version     string
	Environment string

	// Persistence
	DataFile   string // whole-document JSON store
	SQLitePath string // audit recorder; empty disables it

	// Claim window
	Timezone        string
	WindowWeekday   time.Weekday
	WindowOpenHour  int
	WindowCloseHour int

	// Economy tunables
	BaseReward     int
	DisasterChance float64
	MaxWallet      int

	// Discord
	DiscordToken        string
	DiscordAppID        string
	GuildID             string
	ArenaChannelID      string
	LogChannelID        string
	AdminRoleID         string
	TitleRoles          map[string]string // title name -> role id
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", "arena-bot"),
		Version:     getEnv("SERVICE_VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		DataFile:    getEnv("DATA_FILE", "arena_state.json"),
		SQLitePath:  getEnv("SQLITE_PATH", ""),
		Timezone:    getEnv("TZ", "America/Sao_Paulo"),

		DiscordToken:   getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:   getEnv("DISCORD_APP_ID", ""),
		GuildID:        getEnv("GUILD_ID", ""),
		ArenaChannelID: getEnv("CHANNEL_ID", ""),
		LogChannelID:   getEnv("LOG_CHANNEL_ID", ""),
		AdminRoleID:    getEnv("ADMIN_ROLE_ID", ""),
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", 8080); err != nil {
		return nil, err
	}

	weekday, err := getEnvInt("WINDOW_WEEKDAY", int(time.Sunday))
	if err != nil {
		return nil, err
	}
	if weekday < 0 || weekday > 6 {
		return nil, fmt.Errorf("invalid WINDOW_WEEKDAY value: %d", weekday)
	}
	cfg.WindowWeekday = time.Weekday(weekday)

	if cfg.WindowOpenHour, err = getEnvInt("WINDOW_OPEN_HOUR", 9); err != nil {
		return nil, err
	}
	if cfg.WindowCloseHour, err = getEnvInt("WINDOW_CLOSE_HOUR", 24); err != nil {
		return nil, err
	}
	if cfg.WindowOpenHour < 0 || cfg.WindowCloseHour > 24 || cfg.WindowOpenHour >= cfg.WindowCloseHour {
		return nil, fmt.Errorf("invalid claim window hours: [%d, %d)", cfg.WindowOpenHour, cfg.WindowCloseHour)
	}

	if cfg.BaseReward, err = getEnvInt("BASE_REWARD", 270); err != nil {
		return nil, err
	}
	if cfg.MaxWallet, err = getEnvInt("MAX_WALLET", 5000); err != nil {
		return nil, err
	}
	if cfg.DisasterChance, err = getEnvFloat("DISASTER_CHANCE", 0.05); err != nil {
		return nil, err
	}
	if cfg.DisasterChance < 0 || cfg.DisasterChance > 1 {
		return nil, fmt.Errorf("DISASTER_CHANCE must be in [0, 1], got %g", cfg.DisasterChance)
	}

	cfg.TitleRoles = parseTitleRoles(getEnv("TITLE_ROLES", ""))

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

// parseTitleRoles parses "Title Name=roleID,Other Title=roleID" pairs.
// Malformed entries are skipped; role assignment is best-effort anyway.
func parseTitleRoles(raw string) map[string]string {
	roles := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			continue
		}
		title := strings.TrimSpace(parts[0])
		roleID := strings.TrimSpace(parts[1])
		if title != "" && roleID != "" {
			roles[title] = roleID
		}
	}
	return roles
}
