package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars unsets every variable Load reads so one test cannot leak
// into another. t.Setenv first so the original value is restored.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "SERVICE_NAME",
		"SERVICE_VERSION", "ENVIRONMENT", "DATA_FILE", "SQLITE_PATH", "TZ",
		"WINDOW_WEEKDAY", "WINDOW_OPEN_HOUR", "WINDOW_CLOSE_HOUR",
		"BASE_REWARD", "MAX_WALLET", "DISASTER_CHANCE",
		"DISCORD_TOKEN", "DISCORD_APP_ID", "GUILD_ID", "CHANNEL_ID",
		"LOG_CHANNEL_ID", "ADMIN_ROLE_ID", "TITLE_ROLES",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "arena_state.json", cfg.DataFile)
		assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
		assert.Equal(t, time.Sunday, cfg.WindowWeekday)
		assert.Equal(t, 9, cfg.WindowOpenHour)
		assert.Equal(t, 24, cfg.WindowCloseHour)
		assert.Equal(t, 270, cfg.BaseReward)
		assert.Equal(t, 5000, cfg.MaxWallet)
		assert.InDelta(t, 0.05, cfg.DisasterChance, 1e-9)
		assert.Empty(t, cfg.SQLitePath)
		assert.Empty(t, cfg.TitleRoles)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("DATA_FILE", "/var/lib/arena/state.json")
		t.Setenv("SQLITE_PATH", "/var/lib/arena/audit.db")
		t.Setenv("WINDOW_WEEKDAY", "6")
		t.Setenv("WINDOW_OPEN_HOUR", "10")
		t.Setenv("WINDOW_CLOSE_HOUR", "22")
		t.Setenv("BASE_REWARD", "300")
		t.Setenv("MAX_WALLET", "10000")
		t.Setenv("DISASTER_CHANCE", "0.1")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "/var/lib/arena/state.json", cfg.DataFile)
		assert.Equal(t, "/var/lib/arena/audit.db", cfg.SQLitePath)
		assert.Equal(t, time.Saturday, cfg.WindowWeekday)
		assert.Equal(t, 10, cfg.WindowOpenHour)
		assert.Equal(t, 22, cfg.WindowCloseHour)
		assert.Equal(t, 300, cfg.BaseReward)
		assert.Equal(t, 10000, cfg.MaxWallet)
		assert.InDelta(t, 0.1, cfg.DisasterChance, 1e-9)
	})

	t.Run("returns error for invalid port", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-port")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("returns error for out-of-range weekday", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("WINDOW_WEEKDAY", "7")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("returns error for inverted window hours", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("WINDOW_OPEN_HOUR", "20")
		t.Setenv("WINDOW_CLOSE_HOUR", "10")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("returns error for out-of-range disaster chance", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("DISASTER_CHANCE", "1.5")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestParseTitleRoles(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{"empty", "", map[string]string{}},
		{
			"single pair",
			"Cursed Host=123",
			map[string]string{"Cursed Host": "123"},
		},
		{
			"multiple pairs with spaces",
			"Cursed Host=123, Prison Realm Warden=456",
			map[string]string{"Cursed Host": "123", "Prison Realm Warden": "456"},
		},
		{
			"malformed entries skipped",
			"no-equals,=789,Cursed Host=123,Empty=",
			map[string]string{"Cursed Host": "123"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTitleRoles(tt.raw))
		})
	}
}
